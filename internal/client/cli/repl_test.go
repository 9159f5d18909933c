package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}

func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}

func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func (f *fakeExec) WhoAmI(context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}

func (f *fakeExec) Weather(_ context.Context, city string) error {
	f.calls = append(f.calls, "weather:"+city)
	return nil
}

func (f *fakeExec) Refresh(context.Context) error {
	f.calls = append(f.calls, "refresh")
	return nil
}

func (f *fakeExec) Crops(context.Context) error {
	f.calls = append(f.calls, "crops")
	return nil
}

func (f *fakeExec) AddCrop(context.Context) error {
	f.calls = append(f.calls, "addcrop")
	return nil
}

func (f *fakeExec) DeleteCrop(_ context.Context, id string) error {
	f.calls = append(f.calls, "delcrop:"+id)
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	out := captureOutput(t)

	input := "help\ncrops\nlogin\nweather São Paulo\nw\ncrops\naddcrop\ndelcrop 42\nrefresh\nwhoami\nlogout\nfoobar\nexit\nlogin\n"
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	assert.Equal(t, []string{
		"login", "weather:São Paulo", "weather:", "crops", "addcrop", "delcrop:42", "refresh", "whoami", "logout",
	}, exec.calls)
	assert.Contains(t, *out, helpLoggedOut)
	assert.Contains(t, *out, "Please log in first.")
	assert.Contains(t, *out, "Unknown command:foobar")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "s" }, rdr("crops"))

	assert.Equal(t, []string{"crops"}, exec.calls)
}

func TestRequiresLogin(t *testing.T) {
	assert.True(t, requiresLogin("delcrop"))
	assert.False(t, requiresLogin("register"))
	assert.False(t, requiresLogin("help"))
}
