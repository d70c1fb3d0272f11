package serial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNativeConfig(t *testing.T) {
	nc := nativeConfig(&Config{Device: "/dev/ttyUSB1", Baud: 9600, ReadTimeout: 250})
	require.Equal(t, "/dev/ttyUSB1", nc.Name)
	require.Equal(t, 9600, nc.Baud)
	require.Equal(t, 250*time.Millisecond, nc.ReadTimeout)
}

func TestOpenNilConfig(t *testing.T) {
	_, err := Open(nil)
	require.ErrorIs(t, err, ErrNilConfig)
}

func TestOpenMissingDevice(t *testing.T) {
	_, err := Open(&Config{Device: "/nonexistent/tty", Baud: 115200})
	require.Error(t, err)
	require.Contains(t, err.Error(), "/nonexistent/tty")
}
