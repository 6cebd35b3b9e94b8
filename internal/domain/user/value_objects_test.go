//go:build unit

package user_test

import (
	"strings"
	"testing"

	"resource-desk/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name  string
	build func() error
	errIs error
}

func TestEmail(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		email, err := user.NewEmail("test@example.com")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", email.Value())
	})

	t.Run("前後の空白はトリムされる", func(t *testing.T) {
		email, err := user.NewEmail("  test@example.com  ")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", email.Value())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:  "有効なメールアドレスOK",
				build: func() error { _, err := user.NewEmail("valid@example.com"); return err },
			},
			{
				name:  "サブドメイン付きOK",
				build: func() error { _, err := user.NewEmail("user@mail.example.co.jp"); return err },
			},
			{
				name:  "空のメールアドレスNG",
				build: func() error { _, err := user.NewEmail(""); return err },
				errIs: user.ErrInvalidEmail,
			},
			{
				name:  "無効な形式NG",
				build: func() error { _, err := user.NewEmail("invalid-email"); return err },
				errIs: user.ErrInvalidEmail,
			},
			{
				name:  "@なしNG",
				build: func() error { _, err := user.NewEmail("invalidemail.com"); return err },
				errIs: user.ErrInvalidEmail,
			},
			{
				name:  "ドメインなしNG",
				build: func() error { _, err := user.NewEmail("user@"); return err },
				errIs: user.ErrInvalidEmail,
			},
		})
	})
}

func TestPassword(t *testing.T) {
	t.Run("パスワード検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:  "8文字ちょうどOK",
				build: func() error { _, err := user.NewPassword(strings.Repeat("a", 8)); return err },
			},
			{
				name:  "長いパスワードOK",
				build: func() error { _, err := user.NewPassword(strings.Repeat("a", 72)); return err },
			},
			{
				name:  "7文字NG",
				build: func() error { _, err := user.NewPassword(strings.Repeat("a", 7)); return err },
				errIs: user.ErrPasswordTooWeak,
			},
			{
				name:  "空のパスワードNG",
				build: func() error { _, err := user.NewPassword(""); return err },
				errIs: user.ErrPasswordTooWeak,
			},
		})
	})
}

func TestCredentials(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		creds, err := user.NewCredentials("test@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", creds.Email().Value())
		assert.Equal(t, "password123", creds.Password().Value())
	})

	t.Run("資格情報検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:  "有効な組み合わせOK",
				build: func() error { _, err := user.NewCredentials("valid@example.com", "password123"); return err },
			},
			{
				name:  "無効なメールアドレスNG",
				build: func() error { _, err := user.NewCredentials("invalid", "password123"); return err },
				errIs: user.ErrInvalidEmail,
			},
			{
				name:  "弱いパスワードNG",
				build: func() error { _, err := user.NewCredentials("valid@example.com", "short"); return err },
				errIs: user.ErrPasswordTooWeak,
			},
			{
				// both invalid: email is validated first
				name:  "両方無効ならメールアドレスのエラー",
				build: func() error { _, err := user.NewCredentials("invalid", "short"); return err },
				errIs: user.ErrInvalidEmail,
			},
		})
	})
}

func TestRole(t *testing.T) {
	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:  "admin ロールOK",
				build: func() error { _, err := user.NewRole("admin"); return err },
			},
			{
				name:  "staff ロールOK",
				build: func() error { _, err := user.NewRole("staff"); return err },
			},
			{
				name:  "無効なロールNG",
				build: func() error { _, err := user.NewRole("invalid_role"); return err },
				errIs: user.ErrInvalidRole,
			},
			{
				name:  "空のロールNG",
				build: func() error { _, err := user.NewRole(""); return err },
				errIs: user.ErrInvalidRole,
			},
			{
				name:  "大文字NG",
				build: func() error { _, err := user.NewRole("Admin"); return err },
				errIs: user.ErrInvalidRole,
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.build()

			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
