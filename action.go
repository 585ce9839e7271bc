package gridcast

// Action is a recommended grid management step for an upcoming hour.
type Action string

const (
	ActionDischargeBattery  Action = "DISCHARGE_BATTERY"
	ActionActivateBackup    Action = "ACTIVATE_BACKUP"
	ActionChargeBattery     Action = "CHARGE_BATTERY"
	ActionCurtailGeneration Action = "CURTAIL_GENERATION"
	ActionNominalOperation  Action = "NOMINAL_OPERATION"
)

const (
	// renewable output below this fraction of demand triggers supply actions
	deficitDemandFactor = 0.85
	// renewable output above this fraction of demand triggers absorption
	surplusDemandFactor = 1.15

	batteryDischargeFloor = 0.3
	batteryChargeCeiling  = 0.9
)

// RecommendAction maps the forecast renewable output against expected demand
// and the current battery state of charge onto a grid management action. All
// inputs are capacity factor scaled, demand included.
func RecommendAction(solarCF, windCF, demand, batteryLevel float64) Action {
	totalRenewable := solarCF + windCF

	switch {
	case totalRenewable < demand*deficitDemandFactor:
		if batteryLevel > batteryDischargeFloor {
			return ActionDischargeBattery
		}
		return ActionActivateBackup
	case totalRenewable > demand*surplusDemandFactor:
		if batteryLevel < batteryChargeCeiling {
			return ActionChargeBattery
		}
		return ActionCurtailGeneration
	default:
		return ActionNominalOperation
	}
}
