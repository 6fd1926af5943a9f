package request_models

import (
	"github.com/gin-gonic/gin/binding"

	"cityinfo/pkg/utils"
)

const DescriptionEqualsNameMessage = "The provided description should be different from the name."

type PointOfInterestForCreation struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description" binding:"max=200"`
}

// CheckRules adds the cross-field rules that struct tags cannot express.
func (p PointOfInterestForCreation) CheckRules(verr *utils.ValidationError) {
	checkDescriptionDiffersFromName(p.Name, p.Description, verr)
}

type PointOfInterestForUpdate struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description" binding:"max=200"`
}

func (p PointOfInterestForUpdate) CheckRules(verr *utils.ValidationError) {
	checkDescriptionDiffersFromName(p.Name, p.Description, verr)
}

// Validate runs the binding tags and CheckRules. It is used for values that did
// not come through request binding, such as a patched copy.
func (p PointOfInterestForUpdate) Validate() *utils.ValidationError {
	verr := utils.NewValidationError()
	if err := binding.Validator.ValidateStruct(p); err != nil {
		verr.AddValidatorErrors(err)
	}
	p.CheckRules(verr)
	if verr.HasErrors() {
		return verr
	}
	return nil
}

func checkDescriptionDiffersFromName(name, description string, verr *utils.ValidationError) {
	if description == name {
		verr.Add("Description", DescriptionEqualsNameMessage)
	}
}
