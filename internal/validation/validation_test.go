package validation

import (
	"strings"
	"testing"

	"contact_api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateContact_OnlyFirstName(t *testing.T) {
	req := &model.ContactRequest{FirstName: "Eko"}

	assert.NoError(t, ValidateContact(req))
	assert.Nil(t, req.LastName)
	assert.Nil(t, req.Email)
	assert.Nil(t, req.Phone)
}

func TestValidateContact_FullData(t *testing.T) {
	req := &model.ContactRequest{
		FirstName: "Eko",
		LastName:  strPtr("Khannedy"),
		Email:     strPtr("eko@gmail.com"),
		Phone:     strPtr("23424234324"),
	}

	require.NoError(t, ValidateContact(req))
	assert.Equal(t, "Khannedy", *req.LastName)
	assert.Equal(t, "eko@gmail.com", *req.Email)
	assert.Equal(t, "23424234324", *req.Phone)
}

func TestValidateContact_EmptyFirstName(t *testing.T) {
	err := ValidateContact(&model.ContactRequest{FirstName: "   "})

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["first_name"])
}

func TestValidateContact_BlankOptionalFieldsBecomeNull(t *testing.T) {
	req := &model.ContactRequest{FirstName: "Eko", LastName: strPtr(""), Email: strPtr(" "), Phone: strPtr("")}

	require.NoError(t, ValidateContact(req))
	assert.Nil(t, req.LastName)
	assert.Nil(t, req.Email)
	assert.Nil(t, req.Phone)
}

func TestValidateContact_CollectsAllViolations(t *testing.T) {
	req := &model.ContactRequest{
		FirstName: strings.Repeat("a", 101),
		LastName:  strPtr(strings.Repeat("b", 101)),
		Email:     strPtr("not-an-email"),
		Phone:     strPtr(strings.Repeat("1", 21)),
	}

	err := ValidateContact(req)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4)
	assert.Equal(t, "must be at most 100 characters", verr.Fields["first_name"])
	assert.Equal(t, "must be at most 100 characters", verr.Fields["last_name"])
	assert.Equal(t, "must be a valid email address", verr.Fields["email"])
	assert.Equal(t, "must be at most 20 characters", verr.Fields["phone"])
	assert.Contains(t, err.Error(), "email: must be a valid email address")
}

func TestValidateRegister(t *testing.T) {
	assert.NoError(t, ValidateRegister(&model.RegisterUserRequest{Username: "test", Password: "test", Name: "test"}))

	err := ValidateRegister(&model.RegisterUserRequest{})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")
	assert.Contains(t, verr.Fields, "password")
	assert.Contains(t, verr.Fields, "name")
}

func TestValidateLogin_TooLong(t *testing.T) {
	err := ValidateLogin(&model.LoginUserRequest{Username: strings.Repeat("u", 101), Password: "secret"})

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"username": "must be at most 100 characters"}, verr.Fields)
}

func TestValidateUpdateUser(t *testing.T) {
	assert.NoError(t, ValidateUpdateUser(&model.UpdateUserRequest{}))
	assert.NoError(t, ValidateUpdateUser(&model.UpdateUserRequest{Name: strPtr("Eko")}))

	err := ValidateUpdateUser(&model.UpdateUserRequest{Name: strPtr("")})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
}

func TestValidateSearch_Defaults(t *testing.T) {
	req := &model.SearchContactRequest{}

	require.NoError(t, ValidateSearch(req))
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 10, req.Size)
}

func TestValidateSearch_SizeOutOfRange(t *testing.T) {
	err := ValidateSearch(&model.SearchContactRequest{Page: -1, Size: 500})

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be at least 1", verr.Fields["page"])
	assert.Equal(t, "must be at most 100", verr.Fields["size"])
}

func TestValidateRegister_PasswordByteLimit(t *testing.T) {
	assert.NoError(t, ValidateRegister(&model.RegisterUserRequest{Username: "test", Password: strings.Repeat("a", 72), Name: "test"}))
	assert.NoError(t, ValidateRegister(&model.RegisterUserRequest{Username: "test", Password: strings.Repeat("é", 36), Name: "test"}))

	// 37 runes but 74 bytes
	err := ValidateRegister(&model.RegisterUserRequest{Username: "test", Password: strings.Repeat("é", 37), Name: "test"})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"password": "must be at most 72 bytes"}, verr.Fields)
}

func TestValidateUpdateUser_PasswordByteLimit(t *testing.T) {
	assert.NoError(t, ValidateUpdateUser(&model.UpdateUserRequest{Password: strPtr(strings.Repeat("a", 72))}))

	err := ValidateUpdateUser(&model.UpdateUserRequest{Password: strPtr(strings.Repeat("a", 73))})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be at most 72 bytes", verr.Fields["password"])
}

func TestValidateSearch_PageUpperBound(t *testing.T) {
	assert.NoError(t, ValidateSearch(&model.SearchContactRequest{Page: 1000000, Size: 100}))

	err := ValidateSearch(&model.SearchContactRequest{Page: 9223372036854775807, Size: 10})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be at most 1000000", verr.Fields["page"])
}
