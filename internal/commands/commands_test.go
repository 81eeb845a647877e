package commands_test

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/remote"
	"todo/internal/store"
	"todo/internal/testutil"
	"todo/internal/todo"
)

// newEnv returns an Env backed by a task file in a temp dir.
func newEnv(t *testing.T, list *todo.List, quiet bool) *commands.Env {
	t.Helper()
	dir := t.TempDir()
	if list == nil {
		list = todo.New()
	}
	return &commands.Env{
		Config: &config.Config{
			Dir:   dir,
			File:  filepath.Join(dir, "todos.json"),
			Quiet: quiet,
		},
		Log:  logging.Discard(),
		List: list,
	}
}

// runCommand runs cmd against env and captures its output.
func runCommand(t *testing.T, cmd commands.Command, env *commands.Env, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	code = cmd.Run(context.Background(), env, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

// parseFlags binds cmd's flags and parses args into them.
func parseFlags(t *testing.T, cmd commands.Command, args ...string) {
	t.Helper()
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags %v: %v", args, err)
	}
}

// saved is the line printed after the task file is written.
func saved(env *commands.Env) string {
	return "Todos saved to " + env.Config.File + "\n"
}

// listOf builds a list with the given descriptions.
func listOf(descriptions ...string) *todo.List {
	l := todo.New()
	for _, d := range descriptions {
		l.Add(d)
	}
	return l
}

// stored loads the env's task file.
func stored(t *testing.T, env *commands.Env) []todo.Task {
	t.Helper()
	l, err := store.Load(env.Config.File)
	if err != nil {
		t.Fatalf("load %s: %v", env.Config.File, err)
	}
	return l.Todos
}

func TestVersionCommand(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.VersionCmd{}, newEnv(t, nil, false))

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todo 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

func TestHelpCommand_ListsEveryCommand(t *testing.T) {
	stdout, _, code := runCommand(t, &commands.HelpCmd{}, newEnv(t, nil, false))

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	for _, cmd := range commands.NewDefaultRegistry().All() {
		if !strings.Contains(stdout, "todo "+cmd.Name()) {
			t.Errorf("help output missing %q", cmd.Name())
		}
	}
}

func TestAddCommand(t *testing.T) {
	env := newEnv(t, nil, false)

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, env, "buy", "milk")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != saved(env)+"Task added.\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	want := []todo.Task{{ID: 1, Description: "buy milk"}}
	if diff := cmp.Diff(want, stored(t, env)); diff != "" {
		t.Errorf("stored tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestAddCommand_EmptyDescriptionAllowed(t *testing.T) {
	env := newEnv(t, nil, true)

	stdout, _, code := runCommand(t, &commands.AddCmd{}, env, "")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected quiet output, got %q", stdout)
	}
	if got := stored(t, env); len(got) != 1 || got[0].Description != "" {
		t.Errorf("unexpected tasks %+v", got)
	}
}

func TestAddCommand_NoArgs(t *testing.T) {
	env := newEnv(t, nil, false)

	_, stderr, code := runCommand(t, &commands.AddCmd{}, env)

	if code != exitcode.UsageError {
		t.Errorf("expected exit code %d, got %d", exitcode.UsageError, code)
	}
	if stderr != "error: description required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestAddCommand_SaveFailure(t *testing.T) {
	env := newEnv(t, nil, false)
	env.Config.File = filepath.Join(env.Config.Dir, "missing", "todos.json")

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, env, "task")

	if code != exitcode.Failure {
		t.Errorf("expected exit code %d, got %d", exitcode.Failure, code)
	}
	if stdout != "" {
		t.Errorf("confirmation must not be printed on failure, got %q", stdout)
	}
	if !strings.HasPrefix(stderr, "error: save ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDeleteCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		code    int
		stdout  string
		stderr  string
		wantIDs []int
	}{
		{"existing", []string{"2"}, exitcode.Success, "Task deleted.\n", "", []int{1, 3}},
		{"missing is a no-op", []string{"9"}, exitcode.Success, "Task deleted.\n", "", []int{1, 2, 3}},
		{"no id", nil, exitcode.UsageError, "", "error: id required\n", nil},
		{"bad id", []string{"two"}, exitcode.UsageError, "", "error: invalid id: two\n", nil},
		{"negative id", []string{"-1"}, exitcode.UsageError, "", "error: invalid id: -1\n", nil},
		{"extra arg", []string{"1", "2"}, exitcode.UsageError, "", "error: unexpected argument: 2\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newEnv(t, listOf("a", "b", "c"), false)

			stdout, stderr, code := runCommand(t, &commands.DeleteCmd{}, env, tt.args...)

			if code != tt.code {
				t.Errorf("expected exit code %d, got %d", tt.code, code)
			}
			wantOut := tt.stdout
			if tt.code == exitcode.Success {
				wantOut = saved(env) + tt.stdout
			}
			if stdout != wantOut {
				t.Errorf("expected stdout %q, got %q", wantOut, stdout)
			}
			if stderr != tt.stderr {
				t.Errorf("expected stderr %q, got %q", tt.stderr, stderr)
			}
			if tt.code != exitcode.Success {
				return
			}
			var ids []int
			for _, task := range stored(t, env) {
				ids = append(ids, task.ID)
			}
			if diff := cmp.Diff(tt.wantIDs, ids); diff != "" {
				t.Errorf("ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEditCommand(t *testing.T) {
	env := newEnv(t, listOf("buy milk"), false)

	stdout, _, code := runCommand(t, &commands.EditCmd{}, env, "1", "buy", "oat", "milk")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != saved(env)+"Task edited.\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if got := stored(t, env)[0].Description; got != "buy oat milk" {
		t.Errorf("expected edited description, got %q", got)
	}
}

func TestEditCommand_MissingIDLeavesListUnchanged(t *testing.T) {
	env := newEnv(t, listOf("buy milk"), false)

	_, _, code := runCommand(t, &commands.EditCmd{}, env, "7", "other")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	want := []todo.Task{{ID: 1, Description: "buy milk"}}
	if diff := cmp.Diff(want, stored(t, env)); diff != "" {
		t.Errorf("stored tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestEditCommand_UsageErrors(t *testing.T) {
	tests := []struct {
		args   []string
		stderr string
	}{
		{nil, "error: id required\n"},
		{[]string{"x", "text"}, "error: invalid id: x\n"},
		{[]string{"1"}, "error: description required\n"},
	}

	for _, tt := range tests {
		env := newEnv(t, listOf("a"), false)
		_, stderr, code := runCommand(t, &commands.EditCmd{}, env, tt.args...)
		if code != exitcode.UsageError {
			t.Errorf("%v: expected exit code %d, got %d", tt.args, exitcode.UsageError, code)
		}
		if stderr != tt.stderr {
			t.Errorf("%v: expected stderr %q, got %q", tt.args, tt.stderr, stderr)
		}
	}
}

func TestDoneCommand(t *testing.T) {
	env := newEnv(t, listOf("a", "b"), false)

	stdout, _, code := runCommand(t, &commands.DoneCmd{}, env, "2")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != saved(env)+"Task marked as done.\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	want := []todo.Task{{ID: 1, Description: "a"}, {ID: 2, Description: "b", Done: true}}
	if diff := cmp.Diff(want, stored(t, env)); diff != "" {
		t.Errorf("stored tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestListCommand(t *testing.T) {
	list := listOf("write spec", "review")
	list.MarkDone(1)
	env := newEnv(t, list, false)

	stdout, _, code := runCommand(t, &commands.ListCmd{}, env)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "#1: write spec [Done]\n#2: review [Not done]\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_Empty(t *testing.T) {
	stdout, _, _ := runCommand(t, &commands.ListCmd{}, newEnv(t, nil, false))
	if stdout != "No tasks available.\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}

	stdout, _, _ = runCommand(t, &commands.ListCmd{}, newEnv(t, nil, true))
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestListCommand_DoesNotWrite(t *testing.T) {
	env := newEnv(t, listOf("a"), false)

	runCommand(t, &commands.ListCmd{}, env)

	if got := stored(t, env); len(got) != 0 {
		t.Errorf("list must not persist, file has %d tasks", len(got))
	}
}

func TestSearchCommand(t *testing.T) {
	env := newEnv(t, listOf("Buy Milk", "walk dog", "milkshake"), false)

	stdout, _, code := runCommand(t, &commands.SearchCmd{}, env, "milk")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "#1: Buy Milk [Not done]\n#3: milkshake [Not done]\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestSearchCommand_NoMatch(t *testing.T) {
	env := newEnv(t, listOf("walk dog"), false)

	stdout, _, _ := runCommand(t, &commands.SearchCmd{}, env, "big", "cat")

	if stdout != "No tasks found with keyword 'big cat'.\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}

func TestFilterCommand(t *testing.T) {
	list := listOf("a", "b", "c")
	list.MarkDone(2)

	tests := []struct {
		name   string
		flags  []string
		list   *todo.List
		code   int
		stdout string
		stderr string
	}{
		{"done", []string{"--done"}, list, exitcode.Success, "#2: b [Done]\n", ""},
		{"not done", []string{"-n"}, list, exitcode.Success, "#1: a [Not done]\n#3: c [Not done]\n", ""},
		{"no completed", []string{"-d"}, listOf("x"), exitcode.Success, "No completed tasks found.\n", ""},
		{"no pending", []string{"--not-done"}, todo.New(), exitcode.Success, "No pending tasks found.\n", ""},
		{"neither prints nothing", nil, list, exitcode.Success, "", ""},
		{"done wins over not-done", []string{"-d", "-n"}, list, exitcode.Success, "#2: b [Done]\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &commands.FilterCmd{}
			parseFlags(t, cmd, tt.flags...)

			stdout, stderr, code := runCommand(t, cmd, newEnv(t, tt.list, false))

			if code != tt.code {
				t.Errorf("expected exit code %d, got %d", tt.code, code)
			}
			if stdout != tt.stdout {
				t.Errorf("expected stdout %q, got %q", tt.stdout, stdout)
			}
			if stderr != tt.stderr {
				t.Errorf("expected stderr %q, got %q", tt.stderr, stderr)
			}
		})
	}
}

func TestSaveCommand(t *testing.T) {
	env := newEnv(t, listOf("a", "b"), false)
	target := filepath.Join(env.Config.Dir, "backup.json")

	stdout, _, code := runCommand(t, &commands.SaveCmd{}, env, target)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "Todos saved to "+target+"\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	got, err := store.Load(target)
	if err != nil {
		t.Fatalf("load backup: %v", err)
	}
	if diff := cmp.Diff(env.List, got); diff != "" {
		t.Errorf("backup mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveCommand_WriteFailure(t *testing.T) {
	env := newEnv(t, nil, false)

	_, stderr, code := runCommand(t, &commands.SaveCmd{}, env, env.Config.Dir)

	if code != exitcode.Failure {
		t.Errorf("expected exit code %d, got %d", exitcode.Failure, code)
	}
	if !strings.HasPrefix(stderr, "error: save ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestLoadCommand(t *testing.T) {
	env := newEnv(t, listOf("default file task"), false)
	other := testutil.WriteFile(t, env.Config.Dir, "other.json",
		`{"todos":[{"id":4,"description":"from other","done":true}]}`)

	stdout, _, code := runCommand(t, &commands.LoadCmd{}, env, other)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "#4: from other [Done]\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}

func TestLoadCommand_MissingFilePrintsEmpty(t *testing.T) {
	env := newEnv(t, listOf("a"), false)

	stdout, _, code := runCommand(t, &commands.LoadCmd{}, env, filepath.Join(env.Config.Dir, "nope.json"))

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "No tasks available.\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}

func TestLoadCommand_CorruptFile(t *testing.T) {
	env := newEnv(t, nil, false)
	bad := testutil.WriteFile(t, env.Config.Dir, "bad.json", `{"todos": "nope"}`)

	stdout, stderr, code := runCommand(t, &commands.LoadCmd{}, env, bad)

	if code != exitcode.Failure {
		t.Errorf("expected exit code %d, got %d", exitcode.Failure, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "corrupt task file") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestPushCommand(t *testing.T) {
	list := listOf("buy milk", "walk dog")
	list.MarkDone(2)
	env := newEnv(t, list, false)
	svc := testutil.NewFakeRemote()
	env.Remote = svc

	stdout, stderr, code := runCommand(t, &commands.PushCmd{}, env)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "Pushed 2 tasks to My Tasks\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	want := []remote.Task{
		{ID: "buy-milk", Title: "buy milk", Status: remote.StatusOpen},
		{ID: "walk-dog", Title: "walk dog", Status: remote.StatusCompleted},
	}
	if diff := cmp.Diff(want, svc.Tasks(testutil.DefaultListID)); diff != "" {
		t.Errorf("remote tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestPushCommand_NamedList(t *testing.T) {
	env := newEnv(t, listOf("a"), true)
	svc := testutil.NewFakeRemote()
	svc.AddList("errands", "Errands")
	env.Remote = svc

	cmd := &commands.PushCmd{}
	parseFlags(t, cmd, "--list", "errands")
	_, _, code := runCommand(t, cmd, env)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if len(svc.Tasks("errands")) != 1 {
		t.Errorf("expected task in Errands, got %+v", svc.Tasks("errands"))
	}
}

func TestPushCommand_ConfigList(t *testing.T) {
	env := newEnv(t, listOf("a"), true)
	env.Config.RemoteList = "Errands"
	svc := testutil.NewFakeRemote()
	svc.AddList("errands", "Errands")
	env.Remote = svc

	runCommand(t, &commands.PushCmd{}, env)

	if len(svc.Tasks("errands")) != 1 {
		t.Errorf("expected task in Errands, got %+v", svc.Tasks("errands"))
	}
}

func TestPushCommand_Errors(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*testing.T, *testutil.FakeRemote, *commands.PushCmd)
		code   int
		stderr string
	}{
		{
			name:   "list not found",
			setup:  func(t *testing.T, f *testutil.FakeRemote, c *commands.PushCmd) { parseFlags(t, c, "-l", "Nope") },
			code:   exitcode.UsageError,
			stderr: "error: list not found: Nope\n",
		},
		{
			name: "ambiguous list",
			setup: func(t *testing.T, f *testutil.FakeRemote, c *commands.PushCmd) {
				f.AddList("w1", "Work")
				f.AddList("w2", "work")
				parseFlags(t, c, "--list", "work")
			},
			code:   exitcode.UsageError,
			stderr: "error: ambiguous list name: work\n",
		},
		{
			name: "auth",
			setup: func(t *testing.T, f *testutil.FakeRemote, c *commands.PushCmd) {
				f.CreateTaskErr = fmt.Errorf("%w: token expired", remote.ErrAuth)
			},
			code:   exitcode.AuthError,
			stderr: "error: auth error: token expired\n",
		},
		{
			name: "backend",
			setup: func(t *testing.T, f *testutil.FakeRemote, c *commands.PushCmd) {
				f.DefaultListErr = errors.New("connection reset")
			},
			code:   exitcode.BackendError,
			stderr: "error: backend error: connection reset\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newEnv(t, listOf("a"), false)
			svc := testutil.NewFakeRemote()
			cmd := &commands.PushCmd{}
			tt.setup(t, svc, cmd)
			env.Remote = svc

			_, stderr, code := runCommand(t, cmd, env)

			if code != tt.code {
				t.Errorf("expected exit code %d, got %d", tt.code, code)
			}
			if stderr != tt.stderr {
				t.Errorf("expected stderr %q, got %q", tt.stderr, stderr)
			}
		})
	}
}

func TestPullCommand(t *testing.T) {
	env := newEnv(t, listOf("local"), false)
	svc := testutil.NewFakeRemote()
	svc.AddTask(testutil.DefaultListID, "remote one", remote.StatusOpen)
	svc.AddTask(testutil.DefaultListID, "finished", remote.StatusCompleted)
	svc.AddTask(testutil.DefaultListID, "remote two", remote.StatusOpen)
	env.Remote = svc

	stdout, stderr, code := runCommand(t, &commands.PullCmd{}, env)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != saved(env)+"Pulled 2 tasks from My Tasks\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	want := []todo.Task{
		{ID: 1, Description: "local"},
		{ID: 2, Description: "remote one"},
		{ID: 3, Description: "remote two"},
	}
	if diff := cmp.Diff(want, stored(t, env)); diff != "" {
		t.Errorf("stored tasks mismatch (-want +got):\n%s", diff)
	}
}

func TestPullCommand_BackendErrorDoesNotWrite(t *testing.T) {
	env := newEnv(t, listOf("local"), false)
	svc := testutil.NewFakeRemote()
	svc.ListOpenTasksErr = errors.New("boom")
	env.Remote = svc

	_, _, code := runCommand(t, &commands.PullCmd{}, env)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if got := stored(t, env); len(got) != 0 {
		t.Errorf("file should be untouched, has %d tasks", len(got))
	}
}

func TestLogoutCommand(t *testing.T) {
	env := newEnv(t, nil, false)

	stdout, _, code := runCommand(t, &commands.LogoutCmd{}, env)
	if code != exitcode.Success || stdout != "not logged in\n" {
		t.Errorf("expected not logged in, got %d %q", code, stdout)
	}

	testutil.WriteFile(t, env.Config.Dir, config.TokenFile, `{}`)
	stdout, _, code = runCommand(t, &commands.LogoutCmd{}, env)
	if code != exitcode.Success || stdout != "ok\n" {
		t.Errorf("expected ok, got %d %q", code, stdout)
	}
	if env.Config.HasToken() {
		t.Error("token should be removed")
	}
}

func TestLoginCommand_NoOAuthClient(t *testing.T) {
	env := newEnv(t, nil, false)

	stdout, stderr, code := runCommand(t, &commands.LoginCmd{}, env)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if !strings.HasPrefix(stderr, "error: oauth_client.json not found in ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestLoginCommand_InvalidTokenStartsFlow(t *testing.T) {
	env := newEnv(t, nil, false)
	testutil.WriteFile(t, env.Config.Dir, config.OAuthClientFile,
		`{"installed":{"client_id":"test","client_secret":"test","redirect_uris":["http://localhost"]}}`)
	testutil.WriteFile(t, env.Config.Dir, config.TokenFile,
		`{"access_token":"expired","token_type":"Bearer"}`)

	// Cancelled up front so the callback wait returns immediately.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var outBuf, errBuf bytes.Buffer
	code := (&commands.LoginCmd{}).Run(ctx, env, nil, &outBuf, &errBuf)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if outBuf.String() == "already logged in\n" {
		t.Error("should not report already logged in with a token lacking a refresh token")
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.DeleteCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&commands.DeleteCmd{}); err == nil {
		t.Error("expected duplicate name error")
	}
}

func TestRegistry_Aliases(t *testing.T) {
	r := commands.NewDefaultRegistry()

	for alias, name := range map[string]string{"rm": "delete", "ls": "list"} {
		cmd, ok := r.Find(alias)
		if !ok || cmd.Name() != name {
			t.Errorf("alias %q should resolve to %q", alias, name)
		}
	}
	if _, ok := r.Find("nope"); ok {
		t.Error("unexpected command found")
	}
}
