package eligibility

import (
	"glassesfinder/internal/utils"
	"glassesfinder/pkg/types"
)

// Static D.C. assistance directory. Medicaid providers are shown only to
// households under the Medicaid income limit; everyone sees the discount
// programs and local stores.
var (
	medicaidProviders = []types.AssistanceResource{
		{
			Name:        "DC Medicaid Vision Benefits",
			Description: "Covers eye exams and glasses for Medicaid recipients",
			Phone:       utils.StringPtr("1-800-635-1663"),
			Website:     utils.StringPtr("https://dhcf.dc.gov"),
		},
		{
			Name:        "Martha's Table Eye Care",
			Description: "Free eye exams and glasses for low-income families",
			Address:     utils.StringPtr("2114 14th St NW, Washington, DC 20009"),
			Phone:       utils.StringPtr("(202) 328-6608"),
		},
	}

	discountPrograms = []types.AssistanceResource{
		{
			Name:        "Warby Parker Pupils Project",
			Description: "Provides glasses to students and low-income individuals",
			Eligibility: utils.StringPtr("Students and income-qualified individuals"),
		},
		{
			Name:        "OneSight",
			Description: "Mobile clinics providing free eye care in D.C.",
			Website:     utils.StringPtr("https://onesight.org"),
		},
	}

	localStores = []types.AssistanceResource{
		{
			Name:    "LensCrafters - Dupont Circle",
			Address: utils.StringPtr("1150 Connecticut Ave NW, Washington, DC 20036"),
			Phone:   utils.StringPtr("(202) 822-2020"),
		},
		{
			Name:    "Pearle Vision - Columbia Heights",
			Address: utils.StringPtr("3100 14th St NW, Washington, DC 20010"),
			Phone:   utils.StringPtr("(202) 387-7327"),
		},
	}
)

func resourcesForTier(tier types.TierKey) []types.AssistanceResource {
	var out []types.AssistanceResource
	if tier == types.TierMedicaidEligible {
		out = append(out, medicaidProviders...)
	}
	out = append(out, discountPrograms...)
	out = append(out, localStores...)
	return out
}
