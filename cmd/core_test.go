package cmd

import "testing"

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "lnedit")

	out = env.run("version", "-o", "json")
	env.contains(out, `"version"`)
}

func TestGuide(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("guide")
		env.contains(out, "lnedit")
	})

	t.Run("edit guide", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("guide", "edit")
		env.contains(out, "end_of_edit")
	})

	t.Run("unknown guide lists available", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("guide", "nope")
		if err == nil {
			t.Error("guide(unknown) = nil, want error")
		}
		env.contains(out, "Available:")
	})
}

func TestAuditLog(t *testing.T) {
	env := newTestEnv(t)
	env.write("app.py", "a = 1\nb = 2\n")
	env.run("open", "app.py")
	env.runStdin("a = 2\nend_of_edit\n", "edit", "1:1")

	out := env.run("log")
	env.contains(out, "file:open")
	env.contains(out, "edit:edit")
	env.contains(out, "app.py")
	env.contains(out, "ok")

	// Failed operations are recorded too.
	_, _ = env.runErr("open", "missing.py")
	out = env.run("log", "-n", "3")
	env.contains(out, "failed:")
}

func TestHelpListsCommands(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("--help")
	for _, sub := range []string{"open", "create", "goto", "scroll-up", "scroll-down", "print", "edit", "config", "guide", "log", "serve", "version"} {
		env.contains(out, sub)
	}
}
