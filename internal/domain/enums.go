package domain

// Privacy controls who can see a posted project
type Privacy string

const (
	PrivacyAllExperts     Privacy = "all_experts"
	PrivacyInvitationOnly Privacy = "invitation_only"
	PrivacyInternalTeam   Privacy = "internal_team"
)

// Category is the top-level project category. Each category owns its own
// catalogs of types, activities, deliverables, and expertise tags.
type Category string

const (
	CategoryWriting    Category = "writing"
	CategoryResearch   Category = "research"
	CategoryConsulting Category = "consulting"
	CategoryDataAI     Category = "data_ai"
	CategoryProductDev Category = "product_dev"
)

// Categories lists all selectable categories in display order
var Categories = []Category{
	CategoryWriting,
	CategoryResearch,
	CategoryConsulting,
	CategoryDataAI,
	CategoryProductDev,
}

// String returns the display name for a category
func (c Category) String() string {
	switch c {
	case CategoryWriting:
		return "Writing"
	case CategoryResearch:
		return "Research"
	case CategoryConsulting:
		return "Consulting"
	case CategoryDataAI:
		return "Data & AI"
	case CategoryProductDev:
		return "Product Development"
	default:
		return string(c)
	}
}

// LengthUnit is the unit for writing-project length
type LengthUnit string

const (
	LengthUnitWords LengthUnit = "words"
	LengthUnitPages LengthUnit = "pages"
)

// FeeType is how the expert is paid
type FeeType string

const (
	FeeTypeFixed  FeeType = "fixed"
	FeeTypeHourly FeeType = "hourly"
)

// BillingType distinguishes individual from business invoicing
type BillingType string

const (
	BillingTypeIndividual BillingType = "individual"
	BillingTypeBusiness   BillingType = "business"
)

// InvitePreference controls who invites experts after posting
type InvitePreference string

const (
	InviteTeam     InvitePreference = "team_invites"
	InviteSelf     InvitePreference = "self_invite"
	InviteInternal InvitePreference = "internal_invite"
)

// HiringTimelines are the five selectable hiring-urgency options
var HiringTimelines = []string{
	"Immediately",
	"Within 1 week",
	"Within 2 weeks",
	"Within a month",
	"Not sure yet",
}

// HiringFactorNone is the mutually exclusive "none" option for hiring factors.
// If selected it must be the only member of the set.
const HiringFactorNone = "None of these apply"

// HiringFactors are the selectable important-factor options
var HiringFactors = []string{
	"Industry experience",
	"Proven track record",
	"Fast turnaround",
	"Budget fit",
	"Long-term availability",
	HiringFactorNone,
}
