package domain

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

func TestDecodeDataURI(t *testing.T) {
	pngURI, err := EncodeDataURI(solidImage(3, 2, color.NRGBA{R: 1, G: 2, B: 3, A: 255}))
	require.NoError(t, err)

	var jpegBuf bytes.Buffer
	require.NoError(t, jpeg.Encode(&jpegBuf, solidImage(2, 2, color.NRGBA{R: 200, A: 255}), nil))
	jpegURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpegBuf.Bytes())

	tests := []struct {
		name    string
		uri     string
		wantErr error
		wantW   int
		wantH   int
	}{
		{name: "png", uri: pngURI, wantW: 3, wantH: 2},
		{name: "jpeg", uri: jpegURI, wantW: 2, wantH: 2},
		{name: "prefix is ignored", uri: "anything," + strings.SplitN(pngURI, ",", 2)[1], wantW: 3, wantH: 2},
		{name: "missing separator", uri: "data:image/png;base64", wantErr: m.ErrInvalidEncoding},
		{name: "bad base64", uri: "data:image/png;base64,@@@", wantErr: m.ErrInvalidEncoding},
		{name: "not an image", uri: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("hello")), wantErr: m.ErrUnsupportedImage},
		{name: "empty payload", uri: "data:image/png;base64,", wantErr: m.ErrUnsupportedImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeDataURI(tt.uri)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantW, img.Bounds().Dx())
			assert.Equal(t, tt.wantH, img.Bounds().Dy())
		})
	}
}

func TestEncodeDataURI_Prefix(t *testing.T) {
	uri, err := EncodeDataURI(solidImage(1, 1, color.NRGBA{A: 255}))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(uri, "data:@file/png;base64,"))
}
