package main

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/model"
)

func TestParseIdentifierAcceptsInRangeValues(t *testing.T) {
	id, err := parseIdentifier("3")
	require.NoError(t, err)
	require.Equal(t, model.Identifier(3), id)
}

func TestParseIdentifierRejectsNonNumeric(t *testing.T) {
	_, err := parseIdentifier("abc")
	require.Error(t, err)
	require.True(t, errors.Is(err, errUsage))
}

func TestParseIdentifierRejectsBelowMinimum(t *testing.T) {
	_, err := parseIdentifier("0")
	require.Error(t, err)
	require.True(t, errors.Is(err, errUsage))
}

func TestParseLevelAcceptsBoundaryValues(t *testing.T) {
	for _, s := range []string{"-100", "0", "100"} {
		level, err := parseLevel(s)
		require.NoError(t, err, s)
		require.Equal(t, s, strconv.Itoa(int(level)))
	}
}

func TestParseLevelRejectsOutOfRange(t *testing.T) {
	for _, s := range []string{"-101", "101", "x"} {
		_, err := parseLevel(s)
		require.Error(t, err, s)
		require.True(t, errors.Is(err, errUsage), s)
	}
}
