package trap

import (
	"errors"
	"strings"
	"testing"

	"github.com/ariebrainware/tripwire/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenDeceptiveURLDefaultTemplate(t *testing.T) {
	tok, err := NewToken(CreateTokenRequest{
		Name:         "  Q4   Financials ",
		Kind:         "DeceptiveURL",
		DisplayValue: "https://acmecorp.sharepoint.com/sites/finance/Q4.xlsx",
	}, "https://tripwire.app/", testNow)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(tok.ID, "token-"))
	assert.Equal(t, "Q4 Financials", tok.Name)
	assert.Equal(t, model.KindDeceptiveURL, tok.Kind)
	assert.Equal(t, "https://tripwire.app/trap?token_id="+tok.ID, tok.TriggerValue)
	assert.Equal(t, "https://acmecorp.sharepoint.com/sites/finance/Q4.xlsx", tok.DisplayValue)
	assert.Equal(t, model.TokenActive, tok.Status)
	assert.Equal(t, 0, tok.AlertCount)
	assert.True(t, tok.CreatedAt.Equal(testNow))
}

func TestNewTokenCustomTemplate(t *testing.T) {
	tok, err := NewToken(CreateTokenRequest{
		Name:            "AWS creds",
		Kind:            "url",
		TriggerTemplate: "https://files.corp.example/s3/backup.csv?sig={token_id}&v=2",
	}, "https://tripwire.app", testNow)
	require.NoError(t, err)
	assert.Equal(t, "https://files.corp.example/s3/backup.csv?sig="+tok.ID+"&v=2", tok.TriggerValue)
}

func TestNewTokenTemplateWithoutPlaceholder(t *testing.T) {
	_, err := NewToken(CreateTokenRequest{
		Name:            "AWS creds",
		Kind:            "DeceptiveURL",
		TriggerTemplate: "https://files.corp.example/backup.csv",
	}, "https://tripwire.app", testNow)
	assert.True(t, errors.Is(err, model.ErrInvalidToken))
}

func TestNewTokenTrackedFile(t *testing.T) {
	tok, err := NewToken(CreateTokenRequest{Name: "Project Chimera.docx", Kind: "TrackedFile"}, "https://tripwire.app", testNow)
	require.NoError(t, err)
	assert.Equal(t, model.KindTrackedFile, tok.Kind)
	assert.Equal(t, "https://tripwire.app/pixel/"+tok.ID+".gif", tok.TriggerValue)
}

func TestNewTokenValidation(t *testing.T) {
	_, err := NewToken(CreateTokenRequest{Name: "   ", Kind: "DeceptiveURL"}, "https://tripwire.app", testNow)
	assert.True(t, errors.Is(err, model.ErrInvalidToken))

	_, err = NewToken(CreateTokenRequest{Name: "x", Kind: "QRCode"}, "https://tripwire.app", testNow)
	assert.True(t, errors.Is(err, model.ErrInvalidToken))
}

func TestNewTokenIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		id, err := NewTokenID()
		require.NoError(t, err)
		assert.Regexp(t, `^token-[0-9a-z]{16}$`, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
