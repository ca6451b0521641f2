package v1

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ratioflow/backend/internal/httputil"
	"github.com/ratioflow/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Account names are sorted for humans browsing the chart of accounts, not
// byte-wise
var collator = collate.New(language.English, collate.IgnoreCase)

var errNotAValidUUID = errors.New("the specified resource ID is not a valid UUID")

func (co *Controller) registerAccountRoutes(r *gin.RouterGroup) {
	source := r.Group("/source-accounts")
	{
		source.OPTIONS("", OptionsAccountList)
		source.GET("", co.GetSourceAccounts)
		source.POST("", co.CreateSourceAccount)
		source.OPTIONS("/:id", OptionsAccountDetail)
		source.GET("/:id", co.GetSourceAccount)
		source.PATCH("/:id", co.UpdateSourceAccount)
		source.DELETE("/:id", co.DeleteSourceAccount)
		source.PUT("/:id/values", co.SetSourceAccountValues)
	}

	basis := r.Group("/basis-accounts")
	{
		basis.OPTIONS("", OptionsAccountList)
		basis.GET("", co.GetBasisAccounts)
		basis.POST("", co.CreateBasisAccount)
		basis.OPTIONS("/:id", OptionsAccountDetail)
		basis.GET("/:id", co.GetBasisAccount)
		basis.PATCH("/:id", co.UpdateBasisAccount)
		basis.DELETE("/:id", co.DeleteBasisAccount)
		basis.PUT("/:id/values", co.SetBasisAccountValues)
	}

	target := r.Group("/target-accounts")
	{
		target.OPTIONS("", OptionsAccountList)
		target.GET("", co.GetTargetAccounts)
		target.POST("", co.CreateTargetAccount)
		target.OPTIONS("/:id", OptionsAccountDetail)
		target.GET("/:id", co.GetTargetAccount)
		target.PATCH("/:id", co.UpdateTargetAccount)
		target.DELETE("/:id", co.DeleteTargetAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/source-accounts [options]
func OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Param			id	path	string	true	"ID of the account"
// @Router			/v1/source-accounts/{id} [options]
func OptionsAccountDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// fetchResource reads the resource the :id URI parameter references.
func fetchResource[M any](c *gin.Context, resource *M) bool {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.NewError(c, http.StatusBadRequest, errNotAValidUUID)
		return false
	}

	id, err := uuid.Parse(uri.ID)
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, errNotAValidUUID)
		return false
	}

	err = models.DB.First(resource, "id = ?", id).Error
	if err != nil {
		httputil.ErrorHandler(c, err)
		return false
	}

	return true
}

// matchesSearch reports whether the glob pattern matches any of the
// haystacks, ignoring case.
func matchesSearch(pattern string, haystacks ...string) bool {
	if pattern == "" {
		return true
	}

	for _, haystack := range haystacks {
		if glob.Glob(strings.ToLower(pattern), strings.ToLower(haystack)) {
			return true
		}
	}

	return false
}

// @Summary		List source accounts
// @Description	Returns the general-ledger accounts whose balances get allocated
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	map[string][]models.SourceAccount
// @Failure		500		{object}	httputil.HTTPError
// @Param			search	query		string	false	"Glob pattern matched against number and description"
// @Param			archived	query	bool	false	"Include archived accounts"
// @Router			/v1/source-accounts [get]
func (co *Controller) GetSourceAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	_ = c.Bind(&filter)

	query := models.DB
	if !filter.Archived {
		query = query.Where("archived = ?", false)
	}

	var accounts []models.SourceAccount
	if err := query.Find(&accounts).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	matched := make([]models.SourceAccount, 0, len(accounts))
	for _, account := range accounts {
		if matchesSearch(filter.Search, account.Number, account.Description) {
			matched = append(matched, account)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return collator.CompareString(matched[i].Number, matched[j].Number) < 0
	})

	c.JSON(http.StatusOK, gin.H{"data": matched})
}

// @Summary		Get source account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	map[string]models.SourceAccount
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/source-accounts/{id} [get]
func (co *Controller) GetSourceAccount(c *gin.Context) {
	var account models.SourceAccount
	if !fetchResource(c, &account) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": account})
}

// @Summary		Create source account
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	map[string]models.SourceAccount
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			account	body		SourceAccountEditable	true	"The account"
// @Router			/v1/source-accounts [post]
func (co *Controller) CreateSourceAccount(c *gin.Context) {
	var editable SourceAccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	account := editable.model()
	if err := models.DB.Create(&account).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if err := co.Rehydrate(); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": account})
}

// @Summary		Update source account
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	map[string]models.SourceAccount
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			id		path		string					true	"ID of the account"
// @Param			account	body		SourceAccountEditable	true	"The fields to update"
// @Router			/v1/source-accounts/{id} [patch]
func (co *Controller) UpdateSourceAccount(c *gin.Context) {
	var account models.SourceAccount
	if !fetchResource(c, &account) {
		return
	}

	var editable SourceAccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if err := models.DB.Model(&account).Select("Number", "Description", "DefaultValue", "Archived").Updates(editable.model()).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if err := co.Rehydrate(); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": account})
}

// @Summary		Delete source account
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/source-accounts/{id} [delete]
func (co *Controller) DeleteSourceAccount(c *gin.Context) {
	var account models.SourceAccount
	if !fetchResource(c, &account) {
		return
	}

	if err := models.DB.Delete(&account).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if err := co.Rehydrate(); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Set source account values
// @Description	Replaces the per-period values of the account
// @Tags			Accounts
// @Accept			json
// @Success		204
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			id		path		string					true	"ID of the account"
// @Param			values	body		[]AccountValueEditable	true	"The values"
// @Router			/v1/source-accounts/{id}/values [put]
func (co *Controller) SetSourceAccountValues(c *gin.Context) {
	var account models.SourceAccount
	if !fetchResource(c, &account) {
		return
	}

	var values []AccountValueEditable
	if err := httputil.BindData(c, &values); err != nil {
		return
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("source_account_id = ?", account.ID).Delete(&models.SourceAccountValue{}).Error
		if err != nil {
			return err
		}

		for _, value := range values {
			err = tx.Create(&models.SourceAccountValue{
				SourceAccountID: account.ID,
				Period:          value.Period,
				Value:           value.Value,
			}).Error
			if err != nil {
				return err
			}

			err = tx.Where(&models.ReportingPeriod{Period: value.Period}).FirstOrCreate(&models.ReportingPeriod{Period: value.Period}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if err := co.Rehydrate(); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		List basis accounts
// @Description	Returns the measurements available as allocation drivers
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	map[string][]models.BasisAccount
// @Failure		500		{object}	httputil.HTTPError
// @Param			search	query		string	false	"Glob pattern matched against name and description"
// @Param			archived	query	bool	false	"Include archived accounts"
// @Router			/v1/basis-accounts [get]
func (co *Controller) GetBasisAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	_ = c.Bind(&filter)

	query := models.DB
	if !filter.Archived {
		query = query.Where("archived = ?", false)
	}

	var accounts []models.BasisAccount
	if err := query.Find(&accounts).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	matched := make([]models.BasisAccount, 0, len(accounts))
	for _, account := range accounts {
		if matchesSearch(filter.Search, account.Name, account.Description) {
			matched = append(matched, account)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return collator.CompareString(matched[i].Name, matched[j].Name) < 0
	})

	c.JSON(http.StatusOK, gin.H{"data": matched})
}

// @Summary		Get basis account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	map[string]models.BasisAccount
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/basis-accounts/{id} [get]
func (co *Controller) GetBasisAccount(c *gin.Context) {
	var account models.BasisAccount
	if !fetchResource(c, &account) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": account})
}

// @Summary		Create basis account
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	map[string]models.BasisAccount
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			account	body		BasisAccountEditable	true	"The account"
// @Router			/v1/basis-accounts [post]
func (co *Controller) CreateBasisAccount(c *gin.Context) {
	var editable BasisAccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	account := editable.model()
	if err := models.DB.Create(&account).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if err := co.Rehydrate(); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": account})
}

// @Summary		Update basis account
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	map[string]models.BasisAccount
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			id		path		string					true	"ID of the account"
// @Param			account	body		BasisAccountEditable	true	"The fields to update"
// @Router			/v1/basis-accounts/{id} [patch]
func (co *Controller) UpdateBasisAccount(c *gin.Context) {
	var account models.BasisAccount
	if !fetchResource(c, &account) {
		return
	}

	var editable BasisAccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if err := models.DB.Model(&account).Select("Name", "Description", "DefaultValue", "MappedTargetID", "Archived").Updates(editable.model()).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if err := co.Rehydrate(); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": account})
}

// @Summary		Delete basis account
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/basis-accounts/{id} [delete]
func (co *Controller) DeleteBasisAccount(c *gin.Context) {
	var account models.BasisAccount
	if !fetchResource(c, &account) {
		return
	}

	if err := models.DB.Delete(&account).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if err := co.Rehydrate(); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Set basis account values
// @Description	Replaces the per-period values of the account
// @Tags			Accounts
// @Accept			json
// @Success		204
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			id		path		string					true	"ID of the account"
// @Param			values	body		[]AccountValueEditable	true	"The values"
// @Router			/v1/basis-accounts/{id}/values [put]
func (co *Controller) SetBasisAccountValues(c *gin.Context) {
	var account models.BasisAccount
	if !fetchResource(c, &account) {
		return
	}

	var values []AccountValueEditable
	if err := httputil.BindData(c, &values); err != nil {
		return
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("basis_account_id = ?", account.ID).Delete(&models.BasisAccountValue{}).Error
		if err != nil {
			return err
		}

		for _, value := range values {
			err = tx.Create(&models.BasisAccountValue{
				BasisAccountID: account.ID,
				Period:         value.Period,
				Value:          value.Value,
			}).Error
			if err != nil {
				return err
			}

			err = tx.Where(&models.ReportingPeriod{Period: value.Period}).FirstOrCreate(&models.ReportingPeriod{Period: value.Period}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if err := co.Rehydrate(); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		List target accounts
// @Description	Returns the canonical chart of accounts
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	map[string][]models.TargetAccount
// @Failure		500		{object}	httputil.HTTPError
// @Param			search	query		string	false	"Glob pattern matched against number and name"
// @Router			/v1/target-accounts [get]
func (co *Controller) GetTargetAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	_ = c.Bind(&filter)

	var accounts []models.TargetAccount
	if err := models.DB.Find(&accounts).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	matched := make([]models.TargetAccount, 0, len(accounts))
	for _, account := range accounts {
		if matchesSearch(filter.Search, account.Number, account.Name) {
			matched = append(matched, account)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return collator.CompareString(matched[i].Number, matched[j].Number) < 0
	})

	c.JSON(http.StatusOK, gin.H{"data": matched})
}

// @Summary		Get target account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	map[string]models.TargetAccount
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/target-accounts/{id} [get]
func (co *Controller) GetTargetAccount(c *gin.Context) {
	var account models.TargetAccount
	if !fetchResource(c, &account) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": account})
}

// @Summary		Create target account
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	map[string]models.TargetAccount
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			account	body		TargetAccountEditable	true	"The account"
// @Router			/v1/target-accounts [post]
func (co *Controller) CreateTargetAccount(c *gin.Context) {
	var editable TargetAccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	account := editable.model()
	if err := models.DB.Create(&account).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if err := co.Rehydrate(); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": account})
}

// @Summary		Update target account
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	map[string]models.TargetAccount
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			id		path		string					true	"ID of the account"
// @Param			account	body		TargetAccountEditable	true	"The fields to update"
// @Router			/v1/target-accounts/{id} [patch]
func (co *Controller) UpdateTargetAccount(c *gin.Context) {
	var account models.TargetAccount
	if !fetchResource(c, &account) {
		return
	}

	var editable TargetAccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if err := models.DB.Model(&account).Select("Number", "Name").Updates(editable.model()).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if err := co.Rehydrate(); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": account})
}

// @Summary		Delete target account
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/target-accounts/{id} [delete]
func (co *Controller) DeleteTargetAccount(c *gin.Context) {
	var account models.TargetAccount
	if !fetchResource(c, &account) {
		return
	}

	if err := models.DB.Delete(&account).Error; err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if err := co.Rehydrate(); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
