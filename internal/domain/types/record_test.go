package types_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonebook/internal/domain/types"
)

func TestNewPhone_Validation(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"1234567890", true},
		{"0000000000", true},
		{"123456789", false},
		{"12345678901", false},
		{"12345abcde", false},
		{"", false},
		{"+123456789", false},
		{"１２３４５６７８９０", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			p, err := types.NewPhone(tc.in)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.in, p.String())
				return
			}
			var verr *types.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestNewName_RejectsBlank(t *testing.T) {
	_, err := types.NewName("   ")
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)

	n, err := types.NewName("John")
	require.NoError(t, err)
	assert.Equal(t, types.Name("John"), n)
}

func TestNewRecord_InvalidPhone(t *testing.T) {
	_, err := types.NewRecord("John", "1234567890", "12")
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestRecord_PhoneHelpers(t *testing.T) {
	rec, err := types.NewRecord("John", "1234567890", "1111111111")
	require.NoError(t, err)

	require.NoError(t, rec.EditPhone("1234567890", "0987654321"))
	assert.Equal(t, []types.Phone{"1111111111", "0987654321"}, rec.Phones)
	assert.True(t, rec.HasPhone("0987654321"))
	assert.False(t, rec.HasPhone("1234567890"))

	require.NoError(t, rec.RemovePhone("1111111111"))
	assert.Equal(t, "John: 0987654321", rec.String())

	require.Error(t, rec.EditPhone("0987654321", "bad"))
	assert.Equal(t, []types.Phone{"0987654321"}, rec.Phones)
}

func TestRecord_EqualIsOrderSensitive(t *testing.T) {
	a, _ := types.NewRecord("John", "1111111111", "2222222222")
	b, _ := types.NewRecord("John", "2222222222", "1111111111")
	c, _ := types.NewRecord("John", "1111111111", "2222222222")

	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(c))
}

func TestRecord_JSON(t *testing.T) {
	rec, err := types.NewRecord("John", "1234567890")
	require.NoError(t, err)

	b, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"John","phones":["1234567890"]}`, string(b))

	var got types.Record
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, rec.Equal(got))
}

func TestRecord_UnmarshalRejectsIncompleteObjects(t *testing.T) {
	for _, in := range []string{
		`{"name":"John"}`,
		`{"phones":["1234567890"]}`,
		`{"name":"John","phones":["123"]}`,
		`{"name":"","phones":[]}`,
		`null`,
	} {
		var rec types.Record
		err := json.Unmarshal([]byte(in), &rec)
		assert.Error(t, err, in)
	}
}

func TestErrors_Messages(t *testing.T) {
	nf := &types.UserNotFoundError{Name: "Mia"}
	assert.Equal(t, "user 'Mia' not found", nf.Error())

	inner := errors.New("boom")
	pe := &types.ParseError{Line: 3, Err: inner}
	assert.ErrorIs(t, pe, inner)
	assert.Contains(t, pe.Error(), "line 3")
}
