package services_test

import (
	"testing"

	"trade_manager/internal/models"
	"trade_manager/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	cases := []struct {
		role   string
		action services.Action
		want   bool
	}{
		{models.RoleAdmin, services.ActionManageUsers, true},
		{models.RoleDirector, services.ActionManageUsers, false},
		{models.RoleSalesManager, services.ActionManageClients, true},
		{models.RoleSalesManager, services.ActionCreateOrder, true},
		{models.RoleSalesManager, services.ActionEditOrderQuantity, true},
		{models.RoleSalesManager, services.ActionEditOrderStatus, false},
		{models.RoleProductionWorker, services.ActionEditOrderStatus, true},
		{models.RoleProductionWorker, services.ActionEditOrderQuantity, false},
		{models.RoleAccountant, services.ActionRecordPayment, true},
		{models.RoleAccountant, services.ActionGenerateReports, true},
		{models.RoleAccountant, services.ActionManageClients, false},
		{models.RoleDirector, services.ActionCreateOrder, true},
		{models.RoleDirector, services.ActionEditOrderQuantity, true},
		{models.RoleDirector, services.ActionEditOrderStatus, true},
		{models.RoleDirector, services.ActionRecordPayment, true},
		{models.RoleDirector, services.ActionGenerateReports, true},
		{models.RoleBasic, services.ActionManageClients, false},
		{models.RoleBasic, services.ActionCreateOrder, false},
		{"nonexistent", services.ActionCreateOrder, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, services.Can(tc.role, tc.action),
			"role=%s action=%s", tc.role, tc.action)
	}
}
