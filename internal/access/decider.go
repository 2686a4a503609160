package access

import "github.com/coursehive-lab/coursehive/internal/core/storage"

// Reason names the rule that produced a Decision. It is logged and counted.
type Reason string

const (
	ReasonOwner       Reason = "owner"
	ReasonFreePreview Reason = "free_preview"
	ReasonPolicy      Reason = "policy"
	ReasonCatalog     Reason = "catalog"
	ReasonDefault     Reason = "default"
)

// Decision is the outcome of Decide.
type Decision struct {
	RequiresEnrollment bool
	Reason             Reason
}

// Decider chooses whether watching a video requires enrollment.
//
// Rules are applied in order and the first match wins:
//  1. the owner may always watch
//  2. a policy listing the video as a free preview opens it
//  3. a policy's requires_enrollment value
//  4. the contribution's catalog flag
//  5. the configured default
type Decider struct {
	policies                  PolicySource
	defaultRequiresEnrollment bool
}

// NewDecider builds a Decider. A nil policies source means no policy files.
func NewDecider(policies PolicySource, defaultRequiresEnrollment bool) *Decider {
	return &Decider{
		policies:                  policies,
		defaultRequiresEnrollment: defaultRequiresEnrollment,
	}
}

// Decide returns whether userID must be enrolled to watch videoID of contribution.
func (d *Decider) Decide(userID, videoID string, contribution *storage.Contribution) Decision {
	if contribution.OwnerID != "" && contribution.OwnerID == userID {
		return Decision{RequiresEnrollment: false, Reason: ReasonOwner}
	}

	if d.policies != nil {
		if policy, ok := d.policies.Lookup(contribution.ID); ok {
			if policy.IsFreePreview(videoID) {
				return Decision{RequiresEnrollment: false, Reason: ReasonFreePreview}
			}
			if policy.RequiresEnrollment != nil {
				return Decision{RequiresEnrollment: *policy.RequiresEnrollment, Reason: ReasonPolicy}
			}
		}
	}

	if contribution.RequiresEnrollment != nil {
		return Decision{RequiresEnrollment: *contribution.RequiresEnrollment, Reason: ReasonCatalog}
	}

	return Decision{RequiresEnrollment: d.defaultRequiresEnrollment, Reason: ReasonDefault}
}
