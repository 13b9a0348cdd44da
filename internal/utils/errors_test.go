package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeInvalidArgument, http.StatusBadRequest},
		{CodeUnsupportedMedia, http.StatusBadRequest},
		{CodeTooLarge, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeNotFound, http.StatusNotFound},
		{CodeUnavailable, http.StatusServiceUnavailable},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, HTTPStatus(E(tc.code, "op", "msg", nil)), string(tc.code))
	}

	require.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestIsCodeThroughWrapping(t *testing.T) {
	inner := E(CodeNotFound, "repo.Get", "document not found", nil)
	outer := fmt.Errorf("service: %w", inner)

	require.True(t, IsCode(outer, CodeNotFound))
	require.False(t, IsCode(outer, CodeInvalidArgument))
	require.False(t, IsCode(errors.New("plain"), CodeNotFound))
}

func TestAppErrorMessageShape(t *testing.T) {
	err := E(CodeTooLarge, "Ingestor.SaveImage", "file exceeds limit", errors.New("short write"))
	require.Equal(t, "Ingestor.SaveImage: file exceeds limit: short write", err.Error())

	err = E(CodeInternal, "", "boom", nil)
	require.Equal(t, "boom", err.Error())
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := E(CodeUnavailable, "mongo.Connect", "database unreachable", cause)
	require.ErrorIs(t, err, cause)
}
