package controller

import (
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"maktabah_backend/internals/configs"
	"maktabah_backend/internals/features/users/auth/dto"
	"maktabah_backend/internals/features/users/auth/model"
	helper "maktabah_backend/internals/helpers"
)

var validate = validator.New()

const tokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ctrl *AuthController) issueToken(admin *model.AdminModel) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": admin.AdminID.String(),
		"email":    admin.AdminEmail,
		"exp":      time.Now().Add(tokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func (ctrl *AuthController) loginSuccess(c *fiber.Ctx, admin *model.AdminModel) error {
	signed, err := ctrl.issueToken(admin)
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to sign token", err)
	}

	now := time.Now()
	ctrl.DB.Model(admin).UpdateColumn("admin_last_login_at", now)

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    signed,
		Expires:  now.Add(tokenTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(dto.LoginResponse{
		Success: true,
		Token:   signed,
		Admin: dto.AdminInfo{
			AdminID: admin.AdminID.String(),
			Email:   admin.AdminEmail,
			Name:    admin.AdminName,
		},
	})
}

// POST /auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var admin model.AdminModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("admin_email = ? AND admin_is_active = ?", req.Email, true).
		First(&admin).Error; err != nil {
		// same message whether the account or the password is wrong
		return helper.Error(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if admin.AdminPasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*admin.AdminPasswordHash), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	return ctrl.loginSuccess(c, &admin)
}

// POST /auth/google — the Google account's email must already belong to
// an active admin; there is no self-signup.
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "invalid google id token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.ErrorWithDetail(c, fiber.StatusInternalServerError, "failed to decode id token", err)
	}

	var admin model.AdminModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("admin_email = ? AND admin_is_active = ?", claimSet.Email, true).
		First(&admin).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "account not recognized")
	}

	return ctrl.loginSuccess(c, &admin)
}

// POST /auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return helper.Success(c, "logged out", nil)
}

// GET /api/a/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	adminID, _ := c.Locals("admin_id").(string)
	if adminID == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "not authenticated")
	}

	var admin model.AdminModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&admin, "admin_id = ?", adminID).Error; err != nil {
		return helper.FromError(c, err, "admin not found")
	}
	return helper.Success(c, "me", dto.AdminInfo{
		AdminID: admin.AdminID.String(),
		Email:   admin.AdminEmail,
		Name:    admin.AdminName,
	})
}
