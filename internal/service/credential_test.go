package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"munch-pos/internal/apperr"
	"munch-pos/internal/domain"
)

func TestRegisterWeakPasswords(t *testing.T) {
	svc, _ := newTestCredentials(t, newTestDB(t))
	ctx := context.Background()

	weak := []string{
		"Qw!1",     // 8 位不够
		"qwerty!1", // 缺大写
		"QWERTY!1", // 缺小写
		"Qwerty!!", // 缺数字
		"Qwerty11", // 缺符号
	}
	for _, pw := range weak {
		err := svc.Register(ctx, "user@test.com", pw)
		require.Error(t, err, "password %q", pw)
		require.Equal(t, apperr.CodeWeakPassword, apperr.CodeOf(err))
		require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
}

func TestRegisterInvalidEmail(t *testing.T) {
	svc, _ := newTestCredentials(t, newTestDB(t))

	err := svc.Register(context.Background(), "not-an-email", "Qwerty!1")
	require.Error(t, err)
	require.Equal(t, apperr.CodeInvalidEmail, apperr.CodeOf(err))
}

func TestRegisterDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newTestCredentials(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "user@test.com", "Qwerty!1"))

	err := svc.Register(ctx, "user@test.com", "Another!2")
	require.Error(t, err)
	require.Equal(t, apperr.CodeUserExists, apperr.CodeOf(err))
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	var n int64
	require.NoError(t, db.Model(&domain.User{}).Count(&n).Error)
	require.EqualValues(t, 1, n)
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newTestCredentials(t, db)

	require.NoError(t, svc.Register(context.Background(), "user@test.com", "Qwerty!1"))

	var u domain.User
	require.NoError(t, db.First(&u, "email_address = ?", "user@test.com").Error)
	require.NotEqual(t, "Qwerty!1", u.Password)
	require.Contains(t, u.Password, "$2a$") // bcrypt 前缀
	require.Nil(t, u.JwtToken)
}

func TestLoginIssuesTokenWithEmail(t *testing.T) {
	db := newTestDB(t)
	svc, jwter := newTestCredentials(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "user@test.com", "Qwerty!1"))

	tok, err := svc.Login(ctx, "user@test.com", "Qwerty!1")
	require.NoError(t, err)

	claims, err := jwter.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "user@test.com", claims.EmailAddress)

	// token 落在用户记录上，后签覆盖先签
	var u domain.User
	require.NoError(t, db.First(&u, "email_address = ?", "user@test.com").Error)
	require.NotNil(t, u.JwtToken)
	require.Equal(t, tok, *u.JwtToken)

	tok2, err := svc.Login(ctx, "user@test.com", "Qwerty!1")
	require.NoError(t, err)
	require.NoError(t, db.First(&u, "email_address = ?", "user@test.com").Error)
	require.Equal(t, tok2, *u.JwtToken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestCredentials(t, newTestDB(t))
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "user@test.com", "Qwerty!1"))

	_, err := svc.Login(ctx, "user@test.com", "Wrong!password1")
	require.Error(t, err)
	require.Equal(t, apperr.CodeInvalidPassword, apperr.CodeOf(err))
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestCredentials(t, newTestDB(t))

	_, err := svc.Login(context.Background(), "ghost@test.com", "Qwerty!1")
	require.Error(t, err)
	require.Equal(t, apperr.CodeUserNotFound, apperr.CodeOf(err))
}
