package handlers

import (
	"github.com/campbaraisa/camp_admin/database"
	"github.com/campbaraisa/camp_admin/models"
	"github.com/campbaraisa/camp_admin/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GroupRequest struct {
	Name        string  `json:"name" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=shiur transportation trip custom"`
	Capacity    *int    `json:"capacity"`
	Description *string `json:"description"`
}

func CreateGroup(c *fiber.Ctx) error {
	var req GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	group := models.Group{
		Name:        req.Name,
		Type:        req.Type,
		Capacity:    req.Capacity,
		Description: req.Description,
	}
	if err := database.DB.Create(&group).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create group"})
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

func GetGroups(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Group{}).Preload("Campers").Order("name asc")
	if groupType := c.Query("type"); groupType != "" {
		query = query.Where("type = ?", groupType)
	}

	var groups []models.Group
	if err := query.Find(&groups).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(groups)
}

func GetGroup(c *fiber.Ctx) error {
	var group models.Group
	if err := database.DB.Preload("Campers").First(&group, "id = ?", c.Params("groupId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
	}
	return c.JSON(group)
}

func UpdateGroup(c *fiber.Ctx) error {
	var group models.Group
	if err := database.DB.First(&group, "id = ?", c.Params("groupId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
	}

	var req GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	group.Name = req.Name
	group.Type = req.Type
	group.Capacity = req.Capacity
	group.Description = req.Description
	if err := database.DB.Save(&group).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update group"})
	}
	return c.JSON(group)
}

// DeleteGroup removes the group and its membership rows. Campers themselves
// are untouched.
func DeleteGroup(c *fiber.Ctx) error {
	var group models.Group
	if err := database.DB.First(&group, "id = ?", c.Params("groupId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
	}

	if err := database.DB.Model(&group).Association("Campers").Clear(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to clear group members"})
	}
	if err := database.DB.Delete(&group).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete group"})
	}
	return c.JSON(fiber.Map{"message": "Group deleted"})
}

type GroupMemberRequest struct {
	CamperID uuid.UUID `json:"camper_id" validate:"required"`
}

// AddGroupMember enrolls a camper in a group. Enrolling twice is a no-op and
// a full group is refused.
func AddGroupMember(c *fiber.Ctx) error {
	var group models.Group
	if err := database.DB.Preload("Campers").First(&group, "id = ?", c.Params("groupId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
	}

	var req GroupMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var camper models.Camper
	if err := database.DB.First(&camper, "id = ?", req.CamperID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found"})
	}

	for _, member := range group.Campers {
		if member.ID == camper.ID {
			return c.JSON(fiber.Map{"message": "Camper is already in this group"})
		}
	}
	if group.Capacity != nil && len(group.Campers) >= *group.Capacity {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Group is full"})
	}

	if err := database.DB.Model(&group).Association("Campers").Append(&camper); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add camper to group"})
	}

	services.LogActivity(database.DB, "camper", camper.ID, "group_joined", map[string]interface{}{
		"group_id":   group.ID.String(),
		"group_name": group.Name,
	}, currentAdminID(c))

	return c.JSON(fiber.Map{"message": "Camper added to group"})
}

func RemoveGroupMember(c *fiber.Ctx) error {
	var group models.Group
	if err := database.DB.First(&group, "id = ?", c.Params("groupId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
	}

	var camper models.Camper
	if err := database.DB.First(&camper, "id = ?", c.Params("camperId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found"})
	}

	if err := database.DB.Model(&group).Association("Campers").Delete(&camper); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove camper from group"})
	}

	services.LogActivity(database.DB, "camper", camper.ID, "group_left", map[string]interface{}{
		"group_id":   group.ID.String(),
		"group_name": group.Name,
	}, currentAdminID(c))

	return c.JSON(fiber.Map{"message": "Camper removed from group"})
}
