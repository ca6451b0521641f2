package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/ratioflow/backend/internal/controllers/v1"
	"github.com/ratioflow/backend/internal/engine"
	"github.com/ratioflow/backend/internal/models"
	"github.com/ratioflow/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// presetFixture creates two basis and two target accounts plus a preset
// pairing them up.
func (suite *TestSuiteStandard) presetFixture() (engine.Preset, []models.BasisAccount, []models.TargetAccount) {
	basis := []models.BasisAccount{
		suite.createBasisAccount(v1.BasisAccountEditable{Name: "Headcount Engineering"}),
		suite.createBasisAccount(v1.BasisAccountEditable{Name: "Headcount Sales"}),
	}
	targets := []models.TargetAccount{
		suite.createTargetAccount(v1.TargetAccountEditable{Number: "6000", Name: "Facilities"}),
		suite.createTargetAccount(v1.TargetAccountEditable{Number: "6100", Name: "IT"}),
	}

	preset := suite.createPreset(v1.PresetEditable{
		Name: "Headcount split",
		Rows: []v1.PresetRowEditable{
			{BasisAccountID: basis[0].ID.String(), TargetAccountID: targets[0].ID.String()},
			{BasisAccountID: basis[1].ID.String(), TargetAccountID: targets[1].ID.String()},
		},
	})

	return preset, basis, targets
}

func (suite *TestSuiteStandard) TestCreatePresetPersists() {
	preset, _, _ := suite.presetFixture()
	require.Len(suite.T(), preset.Rows, 2)

	// The preset survives a full reload from the database
	var count int64
	models.DB.Model(&models.PresetRow{}).Count(&count)
	assert.Equal(suite.T(), int64(2), count)

	var response struct {
		Data engine.Preset `json:"data"`
	}
	r := test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("/v1/presets/%s", preset.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &response)
	assert.Equal(suite.T(), preset.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestCreatePresetDropsBrokenRows() {
	basis := suite.createBasisAccount(v1.BasisAccountEditable{Name: "Headcount"})
	target := suite.createTargetAccount(v1.TargetAccountEditable{Number: "6000"})

	preset := suite.createPreset(v1.PresetEditable{
		Name: "Sparse",
		Rows: []v1.PresetRowEditable{
			{BasisAccountID: basis.ID.String(), TargetAccountID: target.ID.String()},
			{BasisAccountID: basis.ID.String()},                                      // incomplete
			{BasisAccountID: basis.ID.String(), TargetAccountID: target.ID.String()}, // duplicate
		},
	})

	assert.Len(suite.T(), preset.Rows, 1)
}

func (suite *TestSuiteStandard) TestUpdatePreset() {
	preset, _, _ := suite.presetFixture()

	r := test.Request(suite.controller, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/presets/%s", preset.ID), `{"notes": "Q2 review"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Data engine.Preset `json:"data"`
	}
	suite.decodeResponse(&r, &response)
	assert.Equal(suite.T(), "Q2 review", response.Data.Notes)
	assert.Equal(suite.T(), "Headcount split", response.Data.Name, "name was changed even though the patch did not include one")

	r = test.Request(suite.controller, suite.T(), http.MethodPatch, "/v1/presets/5b95e1a9-522d-4a36-9074-32f7c2ff0513", `{"notes": "x"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestPresetRowOperations() {
	preset, basis, targets := suite.presetFixture()
	extraBasis := suite.createBasisAccount(v1.BasisAccountEditable{Name: "Square meters"})
	extraTarget := suite.createTargetAccount(v1.TargetAccountEditable{Number: "6200", Name: "Marketing"})

	// Insert a new row at the front
	r := test.Request(suite.controller, suite.T(), http.MethodPost, fmt.Sprintf("/v1/presets/%s/rows?index=0", preset.ID), v1.PresetRowEditable{
		BasisAccountID:  extraBasis.ID.String(),
		TargetAccountID: extraTarget.ID.String(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Data engine.Preset `json:"data"`
	}
	suite.decodeResponse(&r, &response)
	require.Len(suite.T(), response.Data.Rows, 3)
	assert.Equal(suite.T(), extraBasis.ID.String(), response.Data.Rows[0].BasisAccountID)

	// Reusing an account of another row is rejected
	r = test.Request(suite.controller, suite.T(), http.MethodPost, fmt.Sprintf("/v1/presets/%s/rows", preset.ID), v1.PresetRowEditable{
		BasisAccountID:  basis[0].ID.String(),
		TargetAccountID: extraTarget.ID.String(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Rewire row 1 to a different target, keeping its own basis account
	r = test.Request(suite.controller, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/presets/%s/rows/1", preset.ID), v1.PresetRowEditable{
		BasisAccountID:  basis[0].ID.String(),
		TargetAccountID: targets[0].ID.String(),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Remove the inserted row again
	r = test.Request(suite.controller, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/presets/%s/rows/0", preset.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &response)
	assert.Len(suite.T(), response.Data.Rows, 2)

	r = test.Request(suite.controller, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/presets/%s/rows/17", preset.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAvailableAccountsEndpoints() {
	preset, basis, _ := suite.presetFixture()
	extraBasis := suite.createBasisAccount(v1.BasisAccountEditable{Name: "Square meters"})

	var response struct {
		Data []engine.BasisAccount `json:"data"`
	}

	r := test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("/v1/presets/%s/available-basis-accounts", preset.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), extraBasis.ID.String(), response.Data[0].ID)

	// Excluding a row keeps its current account selectable
	r = test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("/v1/presets/%s/available-basis-accounts?excludeRow=0", preset.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.decodeResponse(&r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), basis[0].ID.String(), response.Data[0].ID)
}

func (suite *TestSuiteStandard) TestDeletePreset() {
	preset, _, _ := suite.presetFixture()

	r := test.Request(suite.controller, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/presets/%s", preset.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var count int64
	models.DB.Model(&models.Preset{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)

	r = test.Request(suite.controller, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/presets/%s", preset.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
