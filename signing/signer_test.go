package signing

import (
	"crypto/rand"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-slashindicator/common/types"
)

func TestFromFileInvalidKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vote.key")

	_, err := NewEdSigner(FromFile(path))
	require.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("zz"+strings.Repeat("00", 63)), 0o600))
	_, err = NewEdSigner(FromFile(path))
	require.ErrorContains(t, err, "decoding private key")

	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("00", 64)), 0o600))
	_, err = NewEdSigner(FromFile(path))
	require.ErrorContains(t, err, "private and public do not match")
}

func TestEdSigner_Sign(t *testing.T) {
	ed, err := NewEdSigner(WithPrefix([]byte("chain")))
	require.NoError(t, err)

	m := make([]byte, 4)
	rand.Read(m)
	sig := ed.Sign(FINALITY, m)
	signed := append([]byte("chain"), byte(FINALITY))
	signed = append(signed, m...)

	ok := ed25519.Verify(ed.PublicKey().PublicKey, signed, sig[:])
	require.Truef(t, ok, "failed to verify message %x with sig %x", m, sig)
}

func TestEdSigner_ValidKeyEncoding(t *testing.T) {
	ed, err := NewEdSigner()
	require.NoError(t, err)

	require.Equal(t, []byte(ed.priv[32:]), ed.PublicKey().Bytes())
	require.Equal(t, types.BytesToVoteKey(ed.priv[32:]), ed.VoteKey())
}

func TestEdSigner_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vote.key")

	ed, err := NewEdSigner(ToFile(path))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := NewEdSigner(FromFile(path))
	require.NoError(t, err)
	require.Equal(t, ed.VoteKey(), loaded.VoteKey())

	_, err = NewEdSigner(FromFile(path), FromFile(path))
	require.ErrorContains(t, err, "private key already set")

	// a trailing newline from editors is accepted
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, append(data, '\n'), 0o600))
	loaded, err = NewEdSigner(FromFile(path))
	require.NoError(t, err)
	require.Equal(t, ed.VoteKey(), loaded.VoteKey())

	require.NoError(t, os.WriteFile(path, []byte("abcd"), 0o600))
	_, err = NewEdSigner(FromFile(path))
	require.ErrorContains(t, err, "invalid key size")
}

func TestPublicKey_ShortString(t *testing.T) {
	pub := NewPublicKey([]byte{1, 2, 3})
	require.Equal(t, "010203", pub.String())
	require.Equal(t, "01020", pub.ShortString())

	pub = NewPublicKey([]byte{1, 2})
	require.Equal(t, pub.String(), pub.ShortString())
}

func TestDomain_String(t *testing.T) {
	require.Equal(t, "FINALITY", FINALITY.String())
	require.Equal(t, "UNKNOWN", Domain(42).String())
}
