package apierrors_test

import (
	"taskdesk/pkg/apierrors"
	"taskdesk/pkg/translator"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	// Initialize minimal translator for tests
	translator.Translator = i18n.NewBundle(language.English)
	err := translator.Translator.AddMessages(language.English, &i18n.Message{
		ID:    "test_key",
		Other: "Test message",
	})
	if err != nil {
		return
	}
	m.Run()
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError(400, "test_key", "en")
	assert.Equal(t, 400, err.ErrDetails.StatusCode)
	assert.Equal(t, "Test message", err.ErrDetails.Message)
	assert.NotEmpty(t, err.ErrDetails.Timestamp)
	assert.Empty(t, err.ErrDetails.Details)
}

func TestCreateErrorWithDetails_AttachesFieldErrors(t *testing.T) {
	details := []apierrors.FieldError{{Field: "title", Message: "title is too short"}}
	err := apierrors.CreateErrorWithDetails(400, "test_key", "en", details)
	assert.Equal(t, 400, err.ErrDetails.StatusCode)
	assert.Len(t, err.ErrDetails.Details, 1)
	assert.Equal(t, "title", err.ErrDetails.Details[0].Field)
}

func TestGetTransErrorMsg_ReturnsTranslation(t *testing.T) {
	msg := apierrors.GetTransErrorMsg("test_key", "en")
	assert.Equal(t, "Test message", msg)
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	// No translation exists for "unknown_key"
	msg := apierrors.GetTransErrorMsg("unknown_key", "en")
	assert.Equal(t, "unknown_key", msg)
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apierrors.CreateError(500, "test_key", "en")
	assert.Equal(t, "Code: 500, Message: Test message", err.Error())
}
