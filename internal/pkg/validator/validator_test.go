package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("jane@example.com"))
	require.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	require.False(t, IsValidEmail(""))
	require.False(t, IsValidEmail("   "))
	require.False(t, IsValidEmail("not-an-email"))
	require.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidURL(t *testing.T) {
	require.True(t, IsValidURL("https://cdn.example.com/photo.jpg"))
	require.True(t, IsValidURL("http://example.com"))
	require.False(t, IsValidURL(""))
	require.False(t, IsValidURL("ftp://example.com/file"))
	require.False(t, IsValidURL("example"))
}
