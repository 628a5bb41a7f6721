package controllers

import (
	"net/http"

	"hotel-saas-backend/models"
	"hotel-saas-backend/services"
	"hotel-saas-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoleController struct {
	Roles *services.RoleService
}

func NewRoleController(roles *services.RoleService) *RoleController {
	return &RoleController{Roles: roles}
}

func (rc *RoleController) CreateRole(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}

	var payload services.RoleInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	// admins always create roles inside their own tenant; only
	// superadmin may create global templates or roles for other hotels
	if claims.Role != models.RoleSuperAdmin {
		payload.HotelID = claims.HotelID
	}

	role, err := rc.Roles.Create(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, role)
}

func (rc *RoleController) GetRoles(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}

	var scope *uint
	if claims.Role != models.RoleSuperAdmin {
		scope = claims.HotelID
		if scope == nil {
			utils.JSONError(c, http.StatusForbidden, "hotel context required")
			return
		}
	}

	roles, err := rc.Roles.List(c.Request.Context(), scope)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, roles)
}

func (rc *RoleController) roleInScope(c *gin.Context, roleID uint) (models.Role, bool) {
	claims, ok := requestClaims(c)
	if !ok {
		return models.Role{}, false
	}
	role, err := rc.Roles.GetByID(c.Request.Context(), roleID)
	if err != nil {
		respondError(c, err)
		return models.Role{}, false
	}
	if claims.Role != models.RoleSuperAdmin {
		if role.HotelID == nil || claims.HotelID == nil || *role.HotelID != *claims.HotelID {
			utils.JSONError(c, http.StatusForbidden, "role is outside your tenant scope")
			return models.Role{}, false
		}
	}
	return role, true
}

func (rc *RoleController) UpdateRole(c *gin.Context) {
	roleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, ok := rc.roleInScope(c, roleID); !ok {
		return
	}

	var payload services.RoleInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	role, err := rc.Roles.Update(c.Request.Context(), roleID, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, role)
}

func (rc *RoleController) DeleteRole(c *gin.Context) {
	roleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, ok := rc.roleInScope(c, roleID); !ok {
		return
	}

	if err := rc.Roles.Delete(c.Request.Context(), roleID); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "role deleted")
}

type assignRolePayload struct {
	RoleID  uint  `json:"roleId" binding:"required"`
	HotelID *uint `json:"hotelId"`
}

// AssignRole gives a user a role within a hotel scope.
func (rc *RoleController) AssignRole(c *gin.Context) {
	claims, ok := requestClaims(c)
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload assignRolePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	hotelID := payload.HotelID
	if claims.Role != models.RoleSuperAdmin {
		hotelID = claims.HotelID
	}
	if hotelID == nil {
		utils.JSONError(c, http.StatusBadRequest, "hotelId is required")
		return
	}

	assignment, err := rc.Roles.AssignToUser(c.Request.Context(), userID, payload.RoleID, *hotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, assignment)
}
