package notefile_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-vault/internal/crypto"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/mock"
	"github.com/MKhiriev/go-note-vault/internal/notefile"
	"github.com/MKhiriev/go-note-vault/internal/notes"
	"github.com/MKhiriev/go-note-vault/models"
)

const testIterations = 2

// header offsets for files written with a 16-byte salt
const (
	versionOffset = len(notefile.Magic)
	saltLenOffset = versionOffset + 4
	saltOffset    = saltLenOffset + 4
	ivLenOffset   = saltOffset + crypto.SaltSize
	ivOffset      = ivLenOffset + 4
	bodyOffset    = ivOffset + crypto.BlockSize
)

func newTestCodec(opts ...notefile.Option) *notefile.Codec {
	opts = append([]notefile.Option{notefile.WithIterations(testIterations)}, opts...)
	return notefile.NewCodec(crypto.NewKeyChainService(), logger.Nop(), opts...)
}

// sliceSource is a NoteSource over a plain slice; unlike notes.Set it does
// not enforce unique ids.
type sliceSource []models.Note

func (s sliceSource) Len() int                   { return len(s) }
func (s sliceSource) All() iter.Seq[models.Note] { return slices.Values(s) }

// liarSource reports a length that differs from what it yields.
type liarSource struct {
	sliceSource
	claimed int
}

func (s liarSource) Len() int { return s.claimed }

// limitedWriter accepts at most limit bytes in total.
type limitedWriter struct {
	buf   bytes.Buffer
	limit int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	room := w.limit - w.buf.Len()
	if room <= 0 {
		return 0, nil
	}
	if len(p) > room {
		p = p[:room]
	}
	return w.buf.Write(p)
}

func threeNotes() *notes.Set {
	s := notes.New()
	s.Append(models.Note{ID: 1, Title: "Test 1", Message: "Test Note 1"})
	s.Append(models.Note{ID: 2, Title: "Test 2", Message: "Test Note 2"})
	s.Append(models.Note{ID: 3, Title: "Test 3", Message: "Test Note 3"})
	return s
}

func save(t *testing.T, c *notefile.Codec, src notefile.NoteSource, password string) ([]byte, notefile.Credentials) {
	t.Helper()
	var buf bytes.Buffer
	creds, err := c.Save(&buf, src, password)
	require.NoError(t, err)
	return buf.Bytes(), creds
}

// ── round trip ────────────────────────────────────────────────────────────────

// TestCodec_ThreeNoteScenario saves three notes with "asdf" and loads them
// back with the wrong and the right password.
func TestCodec_ThreeNoteScenario(t *testing.T) {
	c := newTestCodec()
	src := threeNotes()
	data, creds := save(t, c, src, "asdf")

	dst := notes.New()
	_, err := c.Load(bytes.NewReader(data), "bla", dst)
	assert.ErrorIs(t, err, notefile.ErrEncryption)
	assert.Equal(t, notefile.EncryptionError, notefile.ResultOf(err))
	assert.Zero(t, dst.Len())

	got, err := c.Load(bytes.NewReader(data), "asdf", dst)
	require.NoError(t, err)
	assert.Equal(t, notefile.Success, notefile.ResultOf(err))
	assert.Equal(t, src.Notes(), dst.Notes())
	assert.Equal(t, creds.Salt, got.Salt)
	assert.Equal(t, creds.Key, got.Key)
}

// TestCodec_EmptyCollection verifies that zero notes is a valid file.
func TestCodec_EmptyCollection(t *testing.T) {
	c := newTestCodec()
	data, _ := save(t, c, notes.New(), "pw")

	dst := notes.New()
	dst.Add("stale", "entry")

	_, err := c.Load(bytes.NewReader(data), "pw", dst)
	require.NoError(t, err)
	assert.Zero(t, dst.Len())
}

// TestCodec_UnicodeAndEmptyFields verifies that arbitrary bytes survive.
func TestCodec_UnicodeAndEmptyFields(t *testing.T) {
	c := newTestCodec()
	src := sliceSource{
		{ID: 9, Title: "", Message: ""},
		{ID: 2, Title: "Ünïcødé ✓", Message: "line1\nline2\x00tail"},
		{ID: 1<<64 - 1, Title: string(bytes.Repeat([]byte("x"), 5000)), Message: "big id"},
	}
	data, _ := save(t, c, src, "pässwörd")

	dst := notes.New()
	_, err := c.Load(bytes.NewReader(data), "pässwörd", dst)
	require.NoError(t, err)
	assert.Equal(t, []models.Note(src), dst.Notes())
}

// TestCodec_SaveWithCredentials verifies a re-save with stored credentials is
// readable with the original password and keeps the salt.
func TestCodec_SaveWithCredentials(t *testing.T) {
	c := newTestCodec()
	_, creds := save(t, c, threeNotes(), "secret")

	updated := threeNotes()
	updated.Add("Test 4", "Test Note 4")

	var buf bytes.Buffer
	require.NoError(t, c.SaveWithCredentials(&buf, updated, creds))

	assert.Equal(t, creds.Salt, buf.Bytes()[saltOffset:saltOffset+crypto.SaltSize])

	dst := notes.New()
	got, err := c.Load(&buf, "secret", dst)
	require.NoError(t, err)
	assert.Equal(t, updated.Notes(), dst.Notes())
	assert.Equal(t, creds, got)
}

// ── layout ────────────────────────────────────────────────────────────────────

// TestCodec_HeaderLayout checks the plaintext header byte for byte.
func TestCodec_HeaderLayout(t *testing.T) {
	c := newTestCodec()
	data, creds := save(t, c, threeNotes(), "pw")

	require.Greater(t, len(data), bodyOffset)
	assert.Equal(t, notefile.Magic, string(data[:versionOffset]))
	assert.Equal(t, uint32(0), binary.BigEndian.Uint32(data[versionOffset:]))
	assert.Equal(t, uint32(crypto.SaltSize), binary.BigEndian.Uint32(data[saltLenOffset:]))
	assert.Equal(t, creds.Salt, data[saltOffset:ivLenOffset])
	assert.Equal(t, uint32(crypto.BlockSize), binary.BigEndian.Uint32(data[ivLenOffset:]))

	body := len(data) - bodyOffset
	assert.Zero(t, body%crypto.BlockSize)
	assert.Positive(t, body)
}

// TestCodec_IVFreshness verifies that two saves of identical content differ in
// IV and ciphertext.
func TestCodec_IVFreshness(t *testing.T) {
	c := newTestCodec()
	_, creds := save(t, c, threeNotes(), "pw")

	var a, b bytes.Buffer
	require.NoError(t, c.SaveWithCredentials(&a, threeNotes(), creds))
	require.NoError(t, c.SaveWithCredentials(&b, threeNotes(), creds))

	require.Equal(t, a.Len(), b.Len())
	assert.NotEqual(t, a.Bytes()[ivOffset:bodyOffset], b.Bytes()[ivOffset:bodyOffset])
	assert.NotEqual(t, a.Bytes()[bodyOffset:], b.Bytes()[bodyOffset:])
}

// ── corruption ────────────────────────────────────────────────────────────────

// TestCodec_FlippedFirstByteIsInvalidFile verifies the magic check.
func TestCodec_FlippedFirstByteIsInvalidFile(t *testing.T) {
	c := newTestCodec()
	data, _ := save(t, c, threeNotes(), "pw")
	data[0] ^= 0xFF

	dst := notes.New()
	_, err := c.Load(bytes.NewReader(data), "pw", dst)
	assert.ErrorIs(t, err, notefile.ErrInvalidFile)
	assert.Equal(t, notefile.InvalidFile, notefile.ResultOf(err))
	assert.Zero(t, dst.Len())
}

// TestCodec_NewerVersionIsRejected verifies that VERSION = current+1 fails.
func TestCodec_NewerVersionIsRejected(t *testing.T) {
	c := newTestCodec()
	data, _ := save(t, c, threeNotes(), "pw")
	binary.BigEndian.PutUint32(data[versionOffset:], notefile.CurrentVersion+1)

	_, err := c.Load(bytes.NewReader(data), "pw", notes.New())
	assert.ErrorIs(t, err, notefile.ErrInvalidVersion)
	assert.Equal(t, notefile.InvalidVersion, notefile.ResultOf(err))
}

// TestCodec_TruncationNeverSucceeds cuts a valid file at every offset.
func TestCodec_TruncationNeverSucceeds(t *testing.T) {
	c := newTestCodec()
	data, _ := save(t, c, threeNotes(), "pw")

	for cut := 0; cut < len(data); cut++ {
		dst := notes.New()
		_, err := c.Load(bytes.NewReader(data[:cut]), "pw", dst)

		res := notefile.ResultOf(err)
		assert.Truef(t, res == notefile.IoError || res == notefile.EncryptionError,
			"cut at %d: got %v (%v)", cut, res, err)
		if cut >= bodyOffset+2*crypto.BlockSize {
			// the body magic has been verified, so the password was right
			assert.Equalf(t, notefile.IoError, res, "cut at %d: %v", cut, err)
		}
		assert.Zerof(t, dst.Len(), "cut at %d left notes behind", cut)
	}
}

// TestCodec_BlockAlignedTruncationIsIoError cuts the body on a block boundary
// inside the records. The cipher reports bad padding, which with the right
// password means a short file, not a wrong key.
func TestCodec_BlockAlignedTruncationIsIoError(t *testing.T) {
	c := newTestCodec()
	data, _ := save(t, c, threeNotes(), "asdf")
	require.Greater(t, len(data), bodyOffset+3*crypto.BlockSize)

	dst := notes.New()
	_, err := c.Load(bytes.NewReader(data[:bodyOffset+3*crypto.BlockSize]), "asdf", dst)

	assert.ErrorIs(t, err, notefile.ErrIO)
	assert.NotErrorIs(t, err, notefile.ErrEncryption)
	assert.Equal(t, notefile.IoError, notefile.ResultOf(err))
	assert.Zero(t, dst.Len())
}

// TestCodec_ShortHeader covers sources that end before the header does.
func TestCodec_ShortHeader(t *testing.T) {
	c := newTestCodec()
	data, _ := save(t, c, threeNotes(), "pw")

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"partial magic", []byte("Note")},
		{"magic only", data[:versionOffset]},
		{"partial salt", data[:saltOffset+3]},
		{"no iv", data[:ivOffset]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Load(bytes.NewReader(tt.data), "pw", notes.New())
			assert.ErrorIs(t, err, notefile.ErrIO)
			assert.ErrorIs(t, err, notefile.ErrShortHeader)
			assert.Equal(t, notefile.IoError, notefile.ResultOf(err))
		})
	}

	_, err := c.Load(bytes.NewReader(data[:bodyOffset+crypto.BlockSize+5]), "pw", notes.New())
	assert.NotErrorIs(t, err, notefile.ErrShortHeader)
}

// TestCodec_CorruptSaltLength verifies that a huge claimed length on a short
// file is a read error, not an allocation.
func TestCodec_CorruptSaltLength(t *testing.T) {
	c := newTestCodec()
	data, _ := save(t, c, threeNotes(), "pw")
	binary.BigEndian.PutUint32(data[saltLenOffset:], 0xFFFFFFFF)

	_, err := c.Load(bytes.NewReader(data), "pw", notes.New())
	assert.ErrorIs(t, err, notefile.ErrIO)
}

// TestCodec_BadIVLength verifies that an IV of the wrong size is a cipher
// setup failure.
func TestCodec_BadIVLength(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(notefile.Magic)
	buf.Write([]byte{0, 0, 0, 0})          // version
	buf.Write([]byte{0, 0, 0, 1, 0xAA})    // salt
	buf.Write([]byte{0, 0, 0, 2, 0x01, 2}) // iv

	_, err := newTestCodec().Load(&buf, "pw", notes.New())
	assert.ErrorIs(t, err, notefile.ErrEncryption)
}

// TestCodec_DuplicateIDAbortsLoad verifies that the collection's duplicate
// rejection aborts the whole load.
func TestCodec_DuplicateIDAbortsLoad(t *testing.T) {
	c := newTestCodec()
	src := sliceSource{
		{ID: 1, Title: "a"},
		{ID: 2, Title: "b"},
		{ID: 1, Title: "c"},
	}
	data, _ := save(t, c, src, "pw")

	dst := notes.New()
	_, err := c.Load(bytes.NewReader(data), "pw", dst)
	assert.ErrorIs(t, err, notefile.ErrIO)
	assert.Equal(t, notefile.IoError, notefile.ResultOf(err))
	assert.Zero(t, dst.Len())
}

// ── key derivation ────────────────────────────────────────────────────────────

// TestCodec_RekeysOlderWorkFactor loads a file written with 5 iterations by a
// codec whose current factor is 3.
func TestCodec_RekeysOlderWorkFactor(t *testing.T) {
	const password = "rekey-me"

	old := newTestCodec(notefile.WithIterations(5))
	data, oldCreds := save(t, old, threeNotes(), password)

	current := newTestCodec(
		notefile.WithIterations(3),
		notefile.WithVersionIterations(notefile.CurrentVersion, 5),
	)
	dst := notes.New()
	got, err := current.Load(bytes.NewReader(data), password, dst)
	require.NoError(t, err)

	assert.Equal(t, 3, dst.Len())
	assert.Equal(t, oldCreds.Salt, got.Salt)
	assert.Equal(t, crypto.DeriveKey(password, got.Salt, 3), got.Key)
	assert.NotEqual(t, oldCreds.Key, got.Key)

	// The next save uses the current factor.
	var buf bytes.Buffer
	require.NoError(t, current.SaveWithCredentials(&buf, dst, got))
	_, err = newTestCodec(notefile.WithIterations(3)).Load(&buf, password, notes.New())
	require.NoError(t, err)
}

// TestCodec_RekeyWipesStaleKey verifies that the key derived with the old
// work factor is zeroed once the current one replaces it.
func TestCodec_RekeyWipesStaleKey(t *testing.T) {
	const password = "rekey-me"
	data, oldCreds := save(t, newTestCodec(notefile.WithIterations(5)), threeNotes(), password)

	ctrl := gomock.NewController(t)
	keys := mock.NewMockKeyChainService(ctrl)
	c := notefile.NewCodec(keys, logger.Nop(),
		notefile.WithIterations(3),
		notefile.WithVersionIterations(notefile.CurrentVersion, 5),
	)

	stale := crypto.DeriveKey(password, oldCreds.Salt, 5)
	fresh := crypto.DeriveKey(password, oldCreds.Salt, 3)
	gomock.InOrder(
		keys.EXPECT().DeriveKey(password, oldCreds.Salt, 5).Return(stale),
		keys.EXPECT().DeriveKey(password, oldCreds.Salt, 3).Return(fresh),
	)

	got, err := c.Load(bytes.NewReader(data), password, notes.New())
	require.NoError(t, err)

	assert.Equal(t, make([]byte, crypto.KeySize), stale)
	assert.Equal(t, crypto.DeriveKey(password, oldCreds.Salt, 3), got.Key)
}

// TestCodec_WorkFactorMismatchIsWrongKey verifies that without a version
// table entry a different work factor behaves like a wrong password.
func TestCodec_WorkFactorMismatchIsWrongKey(t *testing.T) {
	data, _ := save(t, newTestCodec(notefile.WithIterations(5)), threeNotes(), "pw")

	_, err := newTestCodec(notefile.WithIterations(3)).Load(bytes.NewReader(data), "pw", notes.New())
	assert.ErrorIs(t, err, notefile.ErrEncryption)
}

// TestCodec_KeyChainFailures drives setup failures through a mocked key chain.
func TestCodec_KeyChainFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	keys := mock.NewMockKeyChainService(ctrl)
	c := notefile.NewCodec(keys, logger.Nop())

	keys.EXPECT().GenerateSalt().Return(nil, errors.New("entropy exhausted"))
	var buf bytes.Buffer
	_, err := c.Save(&buf, threeNotes(), "pw")
	assert.ErrorIs(t, err, notefile.ErrEncryption)

	keys.EXPECT().GenerateSalt().Return(make([]byte, crypto.SaltSize), nil)
	keys.EXPECT().DeriveKey("pw", gomock.Any(), crypto.DefaultKeyIterations).Return([]byte("short"))
	_, err = c.Save(&buf, threeNotes(), "pw")
	assert.ErrorIs(t, err, notefile.ErrEncryption)

	creds := notefile.Credentials{Salt: []byte{1}, Key: make([]byte, crypto.KeySize)}
	keys.EXPECT().GenerateIV().Return(nil, errors.New("no iv"))
	err = c.SaveWithCredentials(&buf, threeNotes(), creds)
	assert.ErrorIs(t, err, notefile.ErrEncryption)

	keys.EXPECT().GenerateIV().Return(make([]byte, 8), nil)
	err = c.SaveWithCredentials(&buf, threeNotes(), creds)
	assert.ErrorIs(t, err, notefile.ErrEncryption)
}

// ── sink failures ─────────────────────────────────────────────────────────────

// TestCodec_ShortSinkIsIoError saves into sinks that stop at every offset.
func TestCodec_ShortSinkIsIoError(t *testing.T) {
	c := newTestCodec()
	full, creds := save(t, c, threeNotes(), "pw")

	for limit := 0; limit < len(full); limit++ {
		w := &limitedWriter{limit: limit}
		err := c.SaveWithCredentials(w, threeNotes(), creds)
		assert.ErrorIsf(t, err, notefile.ErrIO, "limit %d", limit)
	}
}

// TestCodec_SaveRejectsBadCredentials verifies the key length check.
func TestCodec_SaveRejectsBadCredentials(t *testing.T) {
	var buf bytes.Buffer
	err := newTestCodec().SaveWithCredentials(&buf, threeNotes(), notefile.Credentials{Key: []byte("k")})
	assert.ErrorIs(t, err, notefile.ErrEncryption)
	assert.Zero(t, buf.Len())
}

// TestCodec_SourceLengthMismatch verifies that a collection that lies about
// its size is refused.
func TestCodec_SourceLengthMismatch(t *testing.T) {
	c := newTestCodec()
	_, creds := save(t, c, threeNotes(), "pw")
	src := sliceSource{{ID: 1}, {ID: 2}}

	var buf bytes.Buffer
	err := c.SaveWithCredentials(&buf, liarSource{sliceSource: src, claimed: 3}, creds)
	assert.ErrorIs(t, err, notefile.ErrIO)

	buf.Reset()
	err = c.SaveWithCredentials(&buf, liarSource{sliceSource: src, claimed: 1}, creds)
	assert.ErrorIs(t, err, notefile.ErrIO)
}

// ── results ───────────────────────────────────────────────────────────────────

// TestResultOf covers every classification and the String form.
func TestResultOf(t *testing.T) {
	tests := []struct {
		err  error
		want notefile.Result
		name string
	}{
		{nil, notefile.Success, "Success"},
		{notefile.ErrInvalidFile, notefile.InvalidFile, "InvalidFile"},
		{notefile.ErrInvalidVersion, notefile.InvalidVersion, "InvalidVersion"},
		{notefile.ErrIO, notefile.IoError, "IoError"},
		{notefile.ErrEncryption, notefile.EncryptionError, "EncryptionError"},
		{errors.New("other"), notefile.IoError, "IoError"},
	}

	for _, tt := range tests {
		got := notefile.ResultOf(tt.err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.name, got.String())
	}

	assert.Equal(t, "Result(unknown)", notefile.Result(42).String())
}
