package imgutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// テスト用のダミー画像（10x10 のグラデーション）を作成するヘルパー
func dummyImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			img.Set(x, y, color.RGBA{uint8(x * 25), uint8(y * 25), 128, 255})
		}
	}
	return img
}

func encodeDummy(t *testing.T, format string) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	var err error
	switch format {
	case "png":
		err = png.Encode(buf, dummyImage())
	case "jpeg":
		err = jpeg.Encode(buf, dummyImage(), nil)
	default:
		t.Fatalf("unsupported format: %s", format)
	}
	require.NoError(t, err)
	return buf.Bytes()
}

func TestEncodePNG(t *testing.T) {
	t.Run("PNG としてデコードできる", func(t *testing.T) {
		data, err := EncodePNG(dummyImage())
		require.NoError(t, err)

		img, format, err := image.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, "png", format)
		assert.Equal(t, 10, img.Bounds().Dx())
	})

	t.Run("nil はエラー", func(t *testing.T) {
		_, err := EncodePNG(nil)
		assert.Error(t, err)
	})
}

func TestCompressToJPEG(t *testing.T) {
	t.Run("正常なPNG画像をJPEGに圧縮できること", func(t *testing.T) {
		got, err := CompressToJPEG(encodeDummy(t, "png"), 75)
		require.NoError(t, err)
		require.NotEmpty(t, got)

		_, format, err := image.Decode(bytes.NewReader(got))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
	})

	t.Run("不正なデータを与えた場合にエラーを返すこと", func(t *testing.T) {
		_, err := CompressToJPEG([]byte("this is not an image"), 75)
		assert.ErrorContains(t, err, "デコード")
	})

	t.Run("範囲外の品質は既定値で圧縮される", func(t *testing.T) {
		input := encodeDummy(t, "png")

		got, err := CompressToJPEG(input, 0)
		require.NoError(t, err)
		want, err := CompressToJPEG(input, DefaultJPEGQuality)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestConvert(t *testing.T) {
	input := encodeDummy(t, "png")

	t.Run("png はそのまま", func(t *testing.T) {
		out, mime, err := Convert(input, FormatPNG, 0)
		require.NoError(t, err)
		assert.Equal(t, MimeTypePNG, mime)
		assert.Equal(t, input, out)
	})

	t.Run("jpeg に変換", func(t *testing.T) {
		out, mime, err := Convert(input, FormatJPEG, 80)
		require.NoError(t, err)
		assert.Equal(t, MimeTypeJPEG, mime)
		assert.NotEqual(t, input, out)
	})

	t.Run("未知の形式はエラー", func(t *testing.T) {
		_, _, err := Convert(input, Format("webp"), 80)
		assert.Error(t, err)
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		ext     string
		wantErr bool
	}{
		{"", FormatPNG, "png", false},
		{"PNG", FormatPNG, "png", false},
		{"jpg", FormatJPEG, "jpg", false},
		{" jpeg ", FormatJPEG, "jpg", false},
		{"webp", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ext, got.Extension())
		})
	}
}
