package services

import "play-cards-store/models"

// The order lifecycle is Placed → Processing → Delivered, forward-only and
// one step at a time. Re-applying the current status is a no-op success.
// The table spells out every (current, requested) pair; an empty outcome
// means the transition is allowed.
var transitionTable = map[models.OrderStatus]map[models.OrderStatus]string{
	models.StatusPlaced: {
		models.StatusPlaced:     "",
		models.StatusProcessing: "",
		models.StatusDelivered:  KindSkippedTransition,
	},
	models.StatusProcessing: {
		models.StatusPlaced:     KindBackwardTransition,
		models.StatusProcessing: "",
		models.StatusDelivered:  "",
	},
	models.StatusDelivered: {
		models.StatusPlaced:     KindBackwardTransition,
		models.StatusProcessing: KindBackwardTransition,
		models.StatusDelivered:  "",
	},
}

// NextStatus returns the only forward step from current, or "" for the
// terminal state.
func NextStatus(current models.OrderStatus) models.OrderStatus {
	switch current {
	case models.StatusPlaced:
		return models.StatusProcessing
	case models.StatusProcessing:
		return models.StatusDelivered
	}
	return ""
}

// ValidateTransition checks whether an order may move from current to
// requested. It returns nil when the transition (or no-op re-apply) is
// allowed.
func ValidateTransition(current, requested models.OrderStatus) *ServiceError {
	row, ok := transitionTable[current]
	if !ok {
		return &ServiceError{
			Kind:       KindInvalidStatus,
			StatusCode: 500,
			Message:    "Order has unrecognized status: " + string(current),
		}
	}

	outcome, ok := row[requested]
	if !ok {
		return &ServiceError{
			Kind:       KindInvalidStatus,
			StatusCode: 400,
			Message:    "Invalid order status: " + string(requested),
		}
	}

	switch outcome {
	case KindSkippedTransition:
		return &ServiceError{
			Kind:       KindSkippedTransition,
			StatusCode: 400,
			Message:    "Cannot skip status: " + string(current) + " can only move to " + string(NextStatus(current)),
		}
	case KindBackwardTransition:
		return &ServiceError{
			Kind:       KindBackwardTransition,
			StatusCode: 400,
			Message:    "Cannot move order status backwards from " + string(current),
		}
	}
	return nil
}
