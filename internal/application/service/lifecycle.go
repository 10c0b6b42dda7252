package service

import (
	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/enum"
	"github.com/tablewise/pos-api/pkg/apperror"
)

// CancelAction identifies a lifecycle transition on an order's
// cancel-request workflow.
type CancelAction string

const (
	ActionRequestCancel CancelAction = "request_cancel"
	ActionApproveCancel CancelAction = "approve_cancel"
	ActionRejectCancel  CancelAction = "reject_cancel"
)

// transitionRule describes when a cancel action is allowed: the required
// source status, the required pending-request flag state, and the roles
// permitted to perform it. Keeping this in one table avoids role checks
// scattered across handlers.
type transitionRule struct {
	status      enum.OrderStatus
	pending     bool
	roleAllowed func(enum.Role) bool
	stateMsg    string
}

var cancelTransitions = map[CancelAction]transitionRule{
	ActionRequestCancel: {
		status:      enum.OrderStatusPaid,
		pending:     false,
		roleAllowed: func(r enum.Role) bool { return r == enum.RoleCashier },
		stateMsg:    "Only PAID orders can be cancelled",
	},
	ActionApproveCancel: {
		status:      enum.OrderStatusPaid,
		pending:     true,
		roleAllowed: func(r enum.Role) bool { return r.AtLeast(enum.RoleAdmin) },
		stateMsg:    "Order has no pending cancel request",
	},
	ActionRejectCancel: {
		status:      enum.OrderStatusPaid,
		pending:     true,
		roleAllowed: func(r enum.Role) bool { return r.AtLeast(enum.RoleAdmin) },
		stateMsg:    "Order has no pending cancel request",
	},
}

// authorizeTransition checks role first, then source state. It never
// mutates the order; the repository applies the same guards in the WHERE
// clause of the conditional update, so a race lost between this check and
// the update still fails safely.
func authorizeTransition(order *entity.Order, action CancelAction, role enum.Role) error {
	rule, ok := cancelTransitions[action]
	if !ok {
		return apperror.NewBadRequestError("Unknown transition")
	}

	if !rule.roleAllowed(role) {
		return apperror.NewForbiddenError("Your role is not allowed to perform this action")
	}

	if order.Status != rule.status || order.CancelRequested != rule.pending {
		return apperror.NewStateConflictError(rule.stateMsg)
	}

	return nil
}
