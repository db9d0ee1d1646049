package services

import "trade_manager/internal/models"

// Action is something a logged-in user may try to do. Every role check in
// the system goes through Can, so the permission matrix lives in one place.
type Action string

const (
	ActionManageUsers       Action = "manage_users"
	ActionManageClients     Action = "manage_clients"
	ActionCreateOrder       Action = "create_order"
	ActionEditOrderQuantity Action = "edit_order_quantity"
	ActionEditOrderStatus   Action = "edit_order_status"
	ActionRecordPayment     Action = "record_payment"
	ActionGenerateReports   Action = "generate_reports"
)

var permissions = map[Action][]string{
	ActionManageUsers:       {models.RoleAdmin},
	ActionManageClients:     {models.RoleSalesManager, models.RoleDirector},
	ActionCreateOrder:       {models.RoleSalesManager, models.RoleDirector},
	ActionEditOrderQuantity: {models.RoleSalesManager, models.RoleDirector},
	ActionEditOrderStatus:   {models.RoleProductionWorker, models.RoleDirector},
	ActionRecordPayment:     {models.RoleAccountant, models.RoleDirector},
	ActionGenerateReports:   {models.RoleAccountant, models.RoleSalesManager, models.RoleDirector},
}

// Can reports whether a role is allowed to perform an action. Unknown roles
// (including "basic") are allowed nothing.
func Can(role string, action Action) bool {
	for _, allowed := range permissions[action] {
		if role == allowed {
			return true
		}
	}
	return false
}
