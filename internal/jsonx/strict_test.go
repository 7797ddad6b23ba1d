package jsonx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type scoreBody struct {
	UserID Field[uint64] `json:"userId"`
	Points Field[uint64] `json:"points"`
}

func parse(t *testing.T, body string) (scoreBody, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(body))
	var dst scoreBody
	err := ParseStrictJSONBody(req, DefaultMaxBodyBytes, &dst)
	return dst, err
}

func TestParseStrictJSONBodyHappyPath(t *testing.T) {
	dst, err := parse(t, `{"userId":1,"points":70}`)
	require.NoError(t, err)
	v, ok := dst.UserID.Value()
	require.True(t, ok)
	require.Equal(t, uint64(1), v)
	v, ok = dst.Points.Value()
	require.True(t, ok)
	require.Equal(t, uint64(70), v)
}

func TestParseStrictJSONBodyEmpty(t *testing.T) {
	_, err := parse(t, ``)
	require.ErrorIs(t, err, ErrEmptyBody)
}

func TestParseStrictJSONBodyMalformed(t *testing.T) {
	_, err := parse(t, `{"userId":1,`)
	require.Error(t, err)
}

func TestParseStrictJSONBodyUnknownField(t *testing.T) {
	_, err := parse(t, `{"userId":1,"points":1,"extra":true}`)
	require.Error(t, err)
}

func TestParseStrictJSONBodyDuplicateKey(t *testing.T) {
	_, err := parse(t, `{"userId":1,"userId":2,"points":1}`)
	require.Error(t, err)
}

func TestParseStrictJSONBodyTrailingData(t *testing.T) {
	_, err := parse(t, `{"userId":1,"points":1}{"userId":2,"points":2}`)
	require.ErrorIs(t, err, ErrTrailingJSON)
}

func TestParseStrictJSONBodyNullPrimitive(t *testing.T) {
	dst, err := parse(t, `{"userId":null,"points":1}`)
	require.NoError(t, err)
	require.True(t, dst.UserID.IsSet())
	require.True(t, dst.UserID.IsNull())
	_, ok := dst.UserID.Value()
	require.False(t, ok)
}

func TestParseStrictJSONBodyMissingField(t *testing.T) {
	dst, err := parse(t, `{"userId":1}`)
	require.NoError(t, err)
	require.False(t, dst.Points.IsSet())
	_, ok := dst.Points.Value()
	require.False(t, ok)
}

func TestParseStrictJSONBodyNegativeNumber(t *testing.T) {
	_, err := parse(t, `{"userId":1,"points":-5}`)
	require.Error(t, err)
}
