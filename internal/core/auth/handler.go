package auth

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Handler handles authentication requests
type Handler struct {
	db  *gorm.DB
	jwt *JWTService
}

// NewHandler creates a new auth handler
func NewHandler(db *gorm.DB, jwt *JWTService) *Handler {
	return &Handler{db: db, jwt: jwt}
}

// Login creates an anonymous uploader user and returns a JWT for it.
// No credentials are required.
func (h *Handler) Login(c *fiber.Ctx) error {
	user := User{Role: RoleUploader}
	if err := h.db.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create user",
		})
	}

	token, expiresIn, err := h.jwt.GenerateAccessToken(&TokenClaims{
		UserID: user.ID,
		Role:   user.Role,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to issue token",
		})
	}

	return c.JSON(LoginResponse{
		UserID: user.ID,
		Role:   user.Role,
		Token: TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   expiresIn,
		},
	})
}

// Refresh re-issues an access token from the current bearer token. It needs
// no body: AuthMiddleware already validated the Authorization header.
func (h *Handler) Refresh(c *fiber.Ctx) error {
	userID := UserIDFromCtx(c)
	role, _ := c.Locals("role").(string)
	if userID == 0 || role == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token payload",
		})
	}

	token, expiresIn, err := h.jwt.GenerateAccessToken(&TokenClaims{
		UserID: userID,
		Role:   role,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to issue token",
		})
	}

	return c.JSON(TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	})
}
