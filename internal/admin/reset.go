package admin

import (
	"fmt"

	"honeyworks-backend/internal/apperr"
	"honeyworks-backend/internal/auth"
	"honeyworks-backend/internal/database"
	"honeyworks-backend/internal/i18n"
	"honeyworks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ResetDataRequest struct {
	Password string `json:"password"`
}

// ResetAllData wipes every business table in one transaction. The caller's
// password is re-checked so a stolen session alone cannot trigger it.
// User accounts survive the reset.
func ResetAllData(db *gorm.DB, userID uint, password string) error {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return fmt.Errorf("user %d: %w", userID, apperr.ErrNotFound)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return fmt.Errorf("reset password check: %w", apperr.ErrValidation)
	}

	// Children before parents, so foreign keys never block the wipe.
	tables := []interface{}{
		&models.StockMovement{},
		&models.CustomerTransaction{},
		&models.SupplierTransaction{},
		&models.ProductionMaterial{},
		&models.ProductionRecord{},
		&models.SaleRecord{},
		&models.BOMEntry{},
		&models.RawMaterial{},
		&models.Product{},
		&models.Customer{},
		&models.Supplier{},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			if err := tx.Where("1 = 1").Delete(table).Error; err != nil {
				return fmt.Errorf("reset data: %w: %v", apperr.ErrStore, err)
			}
		}
		return nil
	})
}

// POST /api/admin/reset-data
func ResetDataHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals(auth.CtxUserIDKey).(uint)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, i18n.M(c, "error.validation"))
		}

		var body ResetDataRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.invalid_body"))
		}
		if body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, i18n.M(c, "error.wrong_password"))
		}

		if err := ResetAllData(database.DB, userID, body.Password); err != nil {
			if apperr.HTTPStatus(err) == fiber.StatusBadRequest {
				return fiber.NewError(fiber.StatusForbidden, i18n.M(c, "error.wrong_password"))
			}
			return err
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": i18n.M(c, "success.reset_done"),
		})
	}
}
