package images

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureUploader struct {
	name string
	data []byte
	err  error
}

func (u *captureUploader) Upload(ctx context.Context, name string, data []byte) (string, error) {
	u.name, u.data = name, data
	if u.err != nil {
		return "", u.err
	}
	return "https://img/" + name, nil
}

func TestDecode_StripsDataURLPrefix(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString([]byte("hello"))

	got, err := Decode("data:image/jpeg;base64," + raw)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	got, err = Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestDecode_Invalid(t *testing.T) {
	for _, in := range []string{"", "data:image/png;base64,", "%%%not-base64%%%"} {
		_, err := Decode(in)
		assert.ErrorIs(t, err, ErrInvalidInput, in)
	}
}

func TestUpload_NamesByTypeAndReturnsURL(t *testing.T) {
	up := &captureUploader{}
	svc := NewService(up)

	png := base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\n0000"))
	url, err := svc.Upload(context.Background(), png)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(up.name, ".png"), up.name)
	assert.Equal(t, "https://img/"+up.name, url)
}

func TestUpload_Errors(t *testing.T) {
	_, err := NewService(nil).Upload(context.Background(), "aGVsbG8=")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewService(&captureUploader{err: errors.New("quota")}).Upload(context.Background(), "aGVsbG8=")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}
