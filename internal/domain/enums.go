package domain

// RecordState is the lifecycle state of an ObligationRecord.
type RecordState string

const (
	RecordStateDraft                 RecordState = "DRAFT"
	RecordStateActiveTracking        RecordState = "ACTIVE_TRACKING"
	RecordStateInterrupted           RecordState = "INTERRUPTED"
	RecordStateWaitingPeriodComplete RecordState = "WAITING_PERIOD_COMPLETE"
	RecordStateFinalized             RecordState = "FINALIZED"
	RecordStateUnlocked              RecordState = "UNLOCKED"
)

func (s RecordState) String() string { return string(s) }

func (s RecordState) IsValid() bool {
	switch s {
	case RecordStateDraft, RecordStateActiveTracking, RecordStateInterrupted,
		RecordStateWaitingPeriodComplete, RecordStateFinalized, RecordStateUnlocked:
		return true
	}
	return false
}

// IsEditable reports whether the owner may change selections and figures.
func (s RecordState) IsEditable() bool {
	return s == RecordStateDraft || s == RecordStateUnlocked
}

// IsDeletable reports whether a record in this state may be deleted.
func (s RecordState) IsDeletable() bool {
	return s == RecordStateDraft || s == RecordStateUnlocked
}

// IsFrozen reports whether figures are frozen (no live recomputation).
func (s RecordState) IsFrozen() bool {
	return s == RecordStateFinalized
}

// ThresholdBasis selects which metal defines the nisab.
type ThresholdBasis string

const (
	ThresholdBasisGold   ThresholdBasis = "GOLD"
	ThresholdBasisSilver ThresholdBasis = "SILVER"
)

func (b ThresholdBasis) String() string { return string(b) }

func (b ThresholdBasis) IsValid() bool {
	switch b {
	case ThresholdBasisGold, ThresholdBasisSilver:
		return true
	}
	return false
}

// Methodology is a named rule-set for threshold basis and eligible assets.
type Methodology string

const (
	MethodologyStandard Methodology = "STANDARD"
	MethodologyVariantA Methodology = "VARIANT_A"
	MethodologyVariantB Methodology = "VARIANT_B"
	MethodologyCustom   Methodology = "CUSTOM"
)

func (m Methodology) String() string { return string(m) }

func (m Methodology) IsValid() bool {
	switch m {
	case MethodologyStandard, MethodologyVariantA, MethodologyVariantB, MethodologyCustom:
		return true
	}
	return false
}

// AssetCategory classifies an asset consumed from the asset collaborator.
type AssetCategory string

const (
	AssetCategoryCash        AssetCategory = "CASH"
	AssetCategoryBank        AssetCategory = "BANK"
	AssetCategoryGold        AssetCategory = "GOLD"
	AssetCategorySilver      AssetCategory = "SILVER"
	AssetCategoryCrypto      AssetCategory = "CRYPTO"
	AssetCategoryStocks      AssetCategory = "STOCKS"
	AssetCategoryBusiness    AssetCategory = "BUSINESS"
	AssetCategoryReceivable  AssetCategory = "RECEIVABLE"
	AssetCategoryRetirement  AssetCategory = "RETIREMENT"
	AssetCategoryRealEstate  AssetCategory = "REAL_ESTATE"
	AssetCategoryPersonalUse AssetCategory = "PERSONAL_USE"
	AssetCategoryLiability   AssetCategory = "LIABILITY"
	AssetCategoryOther       AssetCategory = "OTHER"
)

func (c AssetCategory) String() string { return string(c) }

// AuditActor identifies who caused an audit entry.
type AuditActor string

const (
	AuditActorUser      AuditActor = "USER"
	AuditActorScheduler AuditActor = "SCHEDULER"
)

func (a AuditActor) String() string { return string(a) }

// ReminderType is the kind of reminder event.
type ReminderType string

const (
	ReminderTypeAnniversary     ReminderType = "ANNIVERSARY"
	ReminderTypeDistributionDue ReminderType = "DISTRIBUTION_DUE"
	ReminderTypeRecalculation   ReminderType = "RECALCULATION"
	ReminderTypeInfo            ReminderType = "INFO"
)

func (t ReminderType) String() string { return string(t) }

func (t ReminderType) IsValid() bool {
	switch t {
	case ReminderTypeAnniversary, ReminderTypeDistributionDue, ReminderTypeRecalculation, ReminderTypeInfo:
		return true
	}
	return false
}

// ReminderStatus is the delivery state of a reminder event.
type ReminderStatus string

const (
	ReminderStatusPending      ReminderStatus = "PENDING"
	ReminderStatusShown        ReminderStatus = "SHOWN"
	ReminderStatusAcknowledged ReminderStatus = "ACKNOWLEDGED"
	ReminderStatusDismissed    ReminderStatus = "DISMISSED"
	ReminderStatusSnoozed      ReminderStatus = "SNOOZED"
)

func (s ReminderStatus) String() string { return string(s) }

func (s ReminderStatus) IsValid() bool {
	switch s {
	case ReminderStatusPending, ReminderStatusShown, ReminderStatusAcknowledged,
		ReminderStatusDismissed, ReminderStatusSnoozed:
		return true
	}
	return false
}

// IsOpen reports whether the user can still act on the reminder.
func (s ReminderStatus) IsOpen() bool {
	return s == ReminderStatusPending || s == ReminderStatusShown || s == ReminderStatusSnoozed
}

// ReminderPriority orders reminders for display.
type ReminderPriority string

const (
	ReminderPriorityHigh   ReminderPriority = "HIGH"
	ReminderPriorityMedium ReminderPriority = "MEDIUM"
	ReminderPriorityLow    ReminderPriority = "LOW"
)

func (p ReminderPriority) String() string { return string(p) }

// RecipientCategory is one of the eight fixed classes of levy recipients.
type RecipientCategory string

const (
	RecipientCategoryPoor           RecipientCategory = "POOR"
	RecipientCategoryNeedy          RecipientCategory = "NEEDY"
	RecipientCategoryAdministrators RecipientCategory = "ADMINISTRATORS"
	RecipientCategoryReconciliation RecipientCategory = "RECONCILIATION"
	RecipientCategoryCaptives       RecipientCategory = "CAPTIVES"
	RecipientCategoryDebtors        RecipientCategory = "DEBTORS"
	RecipientCategoryCauseOfGod     RecipientCategory = "CAUSE_OF_GOD"
	RecipientCategoryWayfarers      RecipientCategory = "WAYFARERS"
)

// RecipientCategories lists all categories in canonical order.
var RecipientCategories = []RecipientCategory{
	RecipientCategoryPoor,
	RecipientCategoryNeedy,
	RecipientCategoryAdministrators,
	RecipientCategoryReconciliation,
	RecipientCategoryCaptives,
	RecipientCategoryDebtors,
	RecipientCategoryCauseOfGod,
	RecipientCategoryWayfarers,
}

func (c RecipientCategory) String() string { return string(c) }

func (c RecipientCategory) IsValid() bool {
	switch c {
	case RecipientCategoryPoor, RecipientCategoryNeedy, RecipientCategoryAdministrators,
		RecipientCategoryReconciliation, RecipientCategoryCaptives, RecipientCategoryDebtors,
		RecipientCategoryCauseOfGod, RecipientCategoryWayfarers:
		return true
	}
	return false
}

// RecipientType distinguishes individual from organizational recipients.
type RecipientType string

const (
	RecipientTypeIndividual   RecipientType = "INDIVIDUAL"
	RecipientTypeOrganization RecipientType = "ORGANIZATION"
)

func (t RecipientType) String() string { return string(t) }

func (t RecipientType) IsValid() bool {
	return t == RecipientTypeIndividual || t == RecipientTypeOrganization
}

// TrendDirection classifies the change between two periods.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "INCREASING"
	TrendDecreasing TrendDirection = "DECREASING"
	TrendStable     TrendDirection = "STABLE"
)

func (d TrendDirection) String() string { return string(d) }
