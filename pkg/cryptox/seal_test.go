package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSealOpen(t *testing.T) {
	t.Parallel()

	box := NewBox("correct horse battery staple")

	t.Run("round trips", func(t *testing.T) {
		sealed, err := box.Seal([]byte("bearer-token"))
		require.NoError(t, err)

		opened, err := box.Open(sealed)
		require.NoError(t, err)
		require.Equal(t, []byte("bearer-token"), opened)
	})

	t.Run("fresh salt per seal", func(t *testing.T) {
		a, err := box.Seal([]byte("same"))
		require.NoError(t, err)
		b, err := box.Seal([]byte("same"))
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})

	t.Run("wrong passphrase fails", func(t *testing.T) {
		sealed, err := box.Seal([]byte("secret"))
		require.NoError(t, err)

		_, err = NewBox("other").Open(sealed)
		require.Error(t, err)
	})

	t.Run("tamper detected", func(t *testing.T) {
		sealed, err := box.Seal([]byte("secret"))
		require.NoError(t, err)

		sealed[len(sealed)-1] ^= 0xff
		_, err = box.Open(sealed)
		require.Error(t, err)
	})

	t.Run("truncated blob rejected", func(t *testing.T) {
		_, err := box.Open([]byte("short"))
		require.ErrorIs(t, err, ErrSealFormat)
	})

	t.Run("empty passphrase still round trips", func(t *testing.T) {
		dev := NewBox("")
		sealed, err := dev.Seal([]byte("token"))
		require.NoError(t, err)

		opened, err := dev.Open(sealed)
		require.NoError(t, err)
		require.Equal(t, []byte("token"), opened)
	})
}
