package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeText_PlainText(t *testing.T) {
	body := strings.Repeat("experienced software engineer ", 5)

	text, err := ResumeText("resume.txt", "text/plain", []byte("  "+body+"  "))

	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(body), text)
}

func TestResumeText_ExtensionFallback(t *testing.T) {
	body := strings.Repeat("backend developer with go and postgres ", 3)

	// Browsers sometimes send a generic MIME type; the extension decides.
	text, err := ResumeText("resume.TXT", "application/octet-stream", []byte(body))

	require.NoError(t, err)
	assert.NotEmpty(t, text)
}

func TestResumeText_UnsupportedType(t *testing.T) {
	_, err := ResumeText("resume.png", "image/png", []byte("binary stuff"))

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestResumeText_TooShort(t *testing.T) {
	_, err := ResumeText("resume.txt", "text/plain", []byte("too short"))

	assert.ErrorIs(t, err, ErrInsufficientText)
}

func TestResumeText_CorruptPDF(t *testing.T) {
	_, err := ResumeText("resume.pdf", "application/pdf", []byte("not a real pdf"))

	assert.Error(t, err)
}

func TestResumeText_CorruptDOCX(t *testing.T) {
	_, err := ResumeText("resume.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		[]byte("not a real docx"))

	assert.Error(t, err)
}
