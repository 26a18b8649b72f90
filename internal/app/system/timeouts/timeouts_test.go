package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()

	if got := Ping(); got != defaultPing {
		t.Errorf("Ping() = %v, want %v", got, defaultPing)
	}
	if got := Short(); got != defaultShort {
		t.Errorf("Short() = %v, want %v", got, defaultShort)
	}
	if got := Medium(); got != defaultMedium {
		t.Errorf("Medium() = %v, want %v", got, defaultMedium)
	}
}

func TestConfigure(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{
		Ping:   500 * time.Millisecond,
		Short:  2 * time.Second,
		Medium: 4 * time.Second,
	})

	if got := Ping(); got != 500*time.Millisecond {
		t.Errorf("Ping() = %v, want 500ms", got)
	}
	if got := Short(); got != 2*time.Second {
		t.Errorf("Short() = %v, want 2s", got)
	}
	if got := Medium(); got != 4*time.Second {
		t.Errorf("Medium() = %v, want 4s", got)
	}
}

func TestConfigureZeroValuesKeepCurrent(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Short: 3 * time.Second})

	if got := Ping(); got != defaultPing {
		t.Errorf("Ping() = %v, want default %v", got, defaultPing)
	}
	if got := Short(); got != 3*time.Second {
		t.Errorf("Short() = %v, want 3s", got)
	}
	if got := Medium(); got != defaultMedium {
		t.Errorf("Medium() = %v, want default %v", got, defaultMedium)
	}
}

func TestReset(t *testing.T) {
	Configure(Config{Ping: time.Second, Short: time.Second, Medium: time.Second})
	Reset()

	if Ping() != defaultPing || Short() != defaultShort || Medium() != defaultMedium {
		t.Errorf("Reset() left %v/%v/%v, want defaults", Ping(), Short(), Medium())
	}
}
