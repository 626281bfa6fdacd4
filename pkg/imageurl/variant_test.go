package imageurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariantSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Variant
	}{
		{"with_ext", "test.100x200.jpg", Variant{Name: "test", Size: &Size{100, 200}, Extension: ".jpg"}},
		{"without_ext", "test.100x200", Variant{Name: "test", Size: &Size{100, 200}}},
		{"nested", "dir1/dir2/hello.100x200.png", Variant{Name: "dir1/dir2/hello", Size: &Size{100, 200}, Extension: ".png"}},
		{"upper_case", "UpperCase.100x200.PNG", Variant{Name: "UpperCase", Size: &Size{100, 200}, Extension: ".PNG"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseVariant(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestParseVariantTemplate(t *testing.T) {
	t.Parallel()

	got, err := ParseVariant("img/logo.thumbnail.png")
	require.NoError(t, err)
	assert.Nil(t, got.Size)
	assert.Equal(t, "img/logo", got.Name)
	assert.Equal(t, "thumbnail", got.Template)
	assert.Equal(t, ".png", got.Extension)
	assert.Equal(t, "thumbnail", got.Tag())
	assert.Equal(t, "img/logo.png", got.Original())

	got, err = ParseVariant("logo.square")
	require.NoError(t, err)
	assert.Equal(t, "square", got.Template)
	assert.Empty(t, got.Extension)
}

func TestParseVariantRejects(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"",
		"test",
		"test.100x200.",
		"test.100x200./",
		"test.100x200.jp-g",
		".100x200.jpg",
		"a.b.c.d",
	} {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := ParseVariant(input)
			assert.ErrorIs(t, err, ErrNotVariant)
		})
	}
}

func TestParseVariantRoundtrip(t *testing.T) {
	t.Parallel()

	urls := []string{
		"a/b/c.png",
		"a/b/c",
		"static/img/photo.jpeg",
		"Case.PNG",
	}

	for _, url := range urls {
		url := url
		t.Run(url, func(t *testing.T) {
			t.Parallel()
			resized := Resize(url, 320, 240)
			v, err := ParseVariant(resized)
			require.NoError(t, err)
			require.NotNil(t, v.Size)
			assert.Equal(t, Size{320, 240}, *v.Size)
			assert.Equal(t, url, v.Original())
			assert.Equal(t, resized, v.String())
		})
	}
}

func TestLimitsCheck(t *testing.T) {
	t.Parallel()

	limits := Limits{MaxWidth: 1000, MaxHeight: 1000}
	assert.NoError(t, limits.Check(Size{1000, 1000}))
	assert.NoError(t, limits.Check(Size{100, 200}))
	assert.ErrorIs(t, limits.Check(Size{1001, 200}), ErrSizeLimit)
	assert.ErrorIs(t, limits.Check(Size{100, 1001}), ErrSizeLimit)

	// Zero means unlimited
	assert.NoError(t, Limits{}.Check(Size{1 << 20, 1 << 20}))
	assert.ErrorIs(t, Limits{MaxHeight: 10}.Check(Size{1 << 20, 11}), ErrSizeLimit)
}

func TestParseVariantDimensionOverflow(t *testing.T) {
	t.Parallel()

	// Oversized dimensions must not be reread as a template name
	for _, input := range []string{
		"big.99999999999999999999x10.png",
		"big.10x99999999999999999999",
	} {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			v, err := ParseVariant(input)
			require.ErrorIs(t, err, ErrSizeLimit)
			assert.Empty(t, v.Template)
			assert.Nil(t, v.Size)
		})
	}
}

func TestVariantSourceWithExtensionOverride(t *testing.T) {
	t.Parallel()

	v, err := ParseVariant(ResizeAs("img/c.png", 10, 20, ".jpg"))
	require.NoError(t, err)
	assert.Equal(t, "img/c", v.Source())
	assert.Equal(t, "img/c.jpg", v.Original())
	assert.Equal(t, "img/c.10x20.jpg", v.String())
}
