// Package storeapi implements the remote request store the tracker's sync
// adapter talks to. The original deployment ran a generic JSON store for
// this role; this is the same wire contract backed by a real database.
package storeapi

import (
	"time"

	"staffdesk/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// storedRequest is the store's row schema. Seq is a monotonic sequence that
// pins insertion order exactly; createdAt alone is not reliable because rows
// created within the same timestamp granularity could reorder.
type storedRequest struct {
	Seq       int64         `gorm:"primaryKey;autoIncrement" json:"-"`
	ID        string        `gorm:"uniqueIndex;not null" json:"id"`
	UserID    int           `gorm:"not null;index" json:"userId"`
	Type      string        `gorm:"not null" json:"type"`
	Comment   string        `gorm:"not null" json:"comment"`
	Status    models.Status `gorm:"not null" json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (storedRequest) TableName() string {
	return "requests"
}

// Migrate creates or updates the store's schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&storedRequest{})
}

// NewApp builds the store's fiber app on top of the given database.
func NewApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Staffdesk Request Store",
	})

	// GET /requests - full snapshot in insertion order
	app.Get("/requests", func(c *fiber.Ctx) error {
		var rows []storedRequest
		if err := db.Order("seq asc").Find(&rows).Error; err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		return c.JSON(rows)
	})

	// POST /requests - persist a staged request, echo the canonical record
	app.Post("/requests", func(c *fiber.Ctx) error {
		var req storedRequest
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}

		// Clients may stage an id; assign one when they don't.
		if req.ID == "" {
			req.ID = uuid.NewString()
		}
		if req.Status == "" {
			req.Status = models.StatusSubmitted
		}
		if !req.Status.Valid() {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("unknown request status: "+string(req.Status)))
		}
		if req.CreatedAt.IsZero() {
			req.CreatedAt = time.Now().UTC()
		}
		req.Seq = 0 // always let the database assign the sequence

		if err := db.Create(&req).Error; err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		return c.Status(fiber.StatusCreated).JSON(req)
	})

	// PATCH /requests/:id - update status, echo the canonical record
	app.Patch("/requests/:id", func(c *fiber.Ctx) error {
		var body struct {
			Status models.Status `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
		if !body.Status.Valid() {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("unknown request status: "+string(body.Status)))
		}

		var req storedRequest
		if err := db.First(&req, "id = ?", c.Params("id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return models.RespondWithError(c, fiber.StatusNotFound,
					models.NewNotFoundError("Request", c.Params("id")))
			}
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}

		req.Status = body.Status
		if err := db.Save(&req).Error; err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		return c.JSON(req)
	})

	return app
}
