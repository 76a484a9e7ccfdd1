package cmd

import "testing"

func TestConfig(t *testing.T) {
	t.Run("get all shows defaults", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config")
		env.contains(out, "linter.command")
		env.contains(out, "linter.blocking")
		env.contains(out, "linter.warning")
		env.contains(out, "linter.extensions")
		env.contains(out, "window.size")
		env.contains(out, "E999")
	})

	t.Run("get single key after set", func(t *testing.T) {
		env := newTestEnv(t)

		env.run("config", "linter.blocking", "E999,E902")

		out := env.run("config", "linter.blocking")
		env.equals(out, "E999,E902")
	})

	t.Run("window size round trip", func(t *testing.T) {
		env := newTestEnv(t)

		env.run("config", "window.size", "42")
		out := env.run("config", "window.size")
		env.equals(out, "42")
	})

	t.Run("local scope", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config", "--local", "window.size", "17")
		env.contains(out, "(local)")

		// The local file wins over the global one set by newTestEnv.
		out = env.run("config", "window.size")
		env.equals(out, "17")
	})
}

func TestConfig_Errors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.runErr("config", "linter.nope", "value")
		if err == nil {
			t.Error("Config(unknown key) = nil, want error")
		}
	})

	t.Run("invalid window size", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.runErr("config", "window.size", "zero")
		if err == nil {
			t.Error("Config(invalid value) = nil, want error")
		}
	})

	t.Run("extension without dot", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.runErr("config", "linter.extensions", "py")
		if err == nil {
			t.Error("Config(extension without dot) = nil, want error")
		}
	})
}

func TestConfigJSON(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("config", "-o", "json")
	env.contains(out, `"linter.command"`)
	env.contains(out, `"window.size"`)
}
