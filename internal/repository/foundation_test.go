package repository

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"foundation-registry/internal/database"
	"foundation-registry/internal/database/models"
	apperrors "foundation-registry/internal/errors"
	"foundation-registry/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// FoundationRepositoryTestSuite runs the repository against a SQLite file per test
type FoundationRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repo      *FoundationRepository
	factories *testutils.FactorySet
}

// SetupTest opens a fresh database before each test
func (suite *FoundationRepositoryTestSuite) SetupTest() {
	path := filepath.Join(suite.T().TempDir(), "foundations.db")
	db, err := database.Initialize(database.DriverSQLite, path, nil)
	suite.Require().NoError(err)

	suite.db = db
	suite.repo = NewFoundationRepository(db, models.FieldPolicyStrict)
	suite.factories = testutils.NewFactorySet()
}

// TearDownTest closes the pool after each test
func (suite *FoundationRepositoryTestSuite) TearDownTest() {
	suite.NoError(database.Close(suite.db))
}

func (suite *FoundationRepositoryTestSuite) TestEnsureSchemaIsIdempotent() {
	foundation := suite.factories.Foundation.Create()
	suite.Require().NoError(suite.repo.Insert(foundation))

	suite.NoError(suite.repo.EnsureSchema())
	suite.NoError(suite.repo.EnsureSchema())

	total, err := suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(1), total)
}

func (suite *FoundationRepositoryTestSuite) TestInsertAssignsID() {
	foundation := suite.factories.Foundation.Create()

	err := suite.repo.Insert(foundation)

	suite.NoError(err)
	suite.NotZero(foundation.ID)
}

func (suite *FoundationRepositoryTestSuite) TestInsertNormalizesTaxID() {
	foundation := suite.factories.Foundation.WithTaxID("27.865.757/0001-02")

	suite.Require().NoError(suite.repo.Insert(foundation))
	suite.Equal("27865757000102", foundation.TaxID)

	found, ok, err := suite.repo.FindByTaxID("27865757000102")
	suite.NoError(err)
	suite.True(ok)
	suite.Equal(foundation.ID, found.ID)
}

func (suite *FoundationRepositoryTestSuite) TestInsertAndUpdateStoreTrimmedValues() {
	foundation := suite.factories.Foundation.Create()
	foundation.Name = "  Fundação Teste  "
	foundation.Email = " contato@teste.org\t"
	suite.Require().NoError(suite.repo.Insert(foundation))

	stored, ok, err := suite.repo.FindByTaxID(foundation.TaxID)
	suite.Require().NoError(err)
	suite.Require().True(ok)
	suite.Equal("Fundação Teste", stored.Name)
	suite.Equal("contato@teste.org", stored.Email)

	changed := suite.factories.Foundation.Create()
	changed.Phone = "  1133334444 "
	changed.SupportedInstitution = " Instituição Y "
	suite.Require().NoError(suite.repo.Update(changed))

	stored, _, err = suite.repo.FindByTaxID(changed.TaxID)
	suite.Require().NoError(err)
	suite.Equal("1133334444", stored.Phone)
	suite.Equal("Instituição Y", stored.SupportedInstitution)
}

func (suite *FoundationRepositoryTestSuite) TestInsertDuplicateTaxID() {
	first := suite.factories.Foundation.Create()
	suite.Require().NoError(suite.repo.Insert(first))

	second := suite.factories.Foundation.Create()
	second.Name = "Outra Fundação"
	second.Email = "outra@teste.org"

	err := suite.repo.Insert(second)

	suite.ErrorIs(err, apperrors.ErrFoundationExists)
	suite.Zero(second.ID)

	all, err := suite.repo.ListAll()
	suite.NoError(err)
	suite.Len(all, 1)
	suite.Equal(first.Name, all[0].Name)
}

func (suite *FoundationRepositoryTestSuite) TestInsertDuplicateWithDifferentFormatting() {
	suite.Require().NoError(suite.repo.Insert(suite.factories.Foundation.WithTaxID("27865757000102")))

	err := suite.repo.Insert(suite.factories.Foundation.WithTaxID("27.865.757/0001-02"))

	suite.True(apperrors.IsAlreadyExists(err))
}

func (suite *FoundationRepositoryTestSuite) TestInsertValidation() {
	testCases := []struct {
		name   string
		mutate func(f *models.Foundation)
		field  string
	}{
		{name: "blank name", mutate: func(f *models.Foundation) { f.Name = "  " }, field: "name"},
		{name: "missing email", mutate: func(f *models.Foundation) { f.Email = "" }, field: "email"},
		{name: "invalid cnpj", mutate: func(f *models.Foundation) { f.TaxID = "12345678901234" }, field: "tax_id"},
		{name: "repeated digits", mutate: func(f *models.Foundation) { f.TaxID = "11111111111111" }, field: "tax_id"},
		{name: "missing phone", mutate: func(f *models.Foundation) { f.Phone = "" }, field: "phone"},
		{name: "missing institution", mutate: func(f *models.Foundation) { f.SupportedInstitution = " " }, field: "supported_institution"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			foundation := suite.factories.Foundation.Create()
			tc.mutate(foundation)

			err := suite.repo.Insert(foundation)

			var verr *apperrors.ValidationError
			suite.Require().ErrorAs(err, &verr)
			suite.Equal(tc.field, verr.Field)
		})
	}

	total, err := suite.repo.Count()
	suite.NoError(err)
	suite.Zero(total)
}

func (suite *FoundationRepositoryTestSuite) TestInsertNil() {
	suite.ErrorIs(suite.repo.Insert(nil), apperrors.ErrNilFoundation)
	suite.ErrorIs(suite.repo.Update(nil), apperrors.ErrNilFoundation)
	suite.True(apperrors.IsValidation(suite.repo.Insert(nil)))
	suite.True(apperrors.IsValidation(suite.repo.Update(nil)))
}

func (suite *FoundationRepositoryTestSuite) TestRelaxedPolicyAllowsMissingContactFields() {
	relaxed := NewFoundationRepository(suite.db, models.FieldPolicyRelaxed)
	foundation := suite.factories.Foundation.Create()
	foundation.Phone = ""
	foundation.SupportedInstitution = ""

	suite.NoError(relaxed.Insert(foundation))
	suite.Equal(models.FieldPolicyRelaxed, relaxed.Policy())

	found, ok, err := relaxed.FindByTaxID(foundation.TaxID)
	suite.NoError(err)
	suite.True(ok)
	suite.Empty(found.Phone)
	suite.Empty(found.SupportedInstitution)
}

func (suite *FoundationRepositoryTestSuite) TestUnknownPolicyDefaultsToStrict() {
	repo := NewFoundationRepository(suite.db, models.FieldPolicy("whatever"))
	suite.Equal(models.FieldPolicyStrict, repo.Policy())
}

func (suite *FoundationRepositoryTestSuite) TestFindByTaxIDOnEmptyStore() {
	found, ok, err := suite.repo.FindByTaxID("27865757000102")

	suite.NoError(err)
	suite.False(ok)
	suite.Nil(found)
}

func (suite *FoundationRepositoryTestSuite) TestFindByTaxID() {
	foundation := suite.factories.Foundation.Create()
	suite.Require().NoError(suite.repo.Insert(foundation))

	found, ok, err := suite.repo.FindByTaxID(foundation.TaxID)

	suite.NoError(err)
	suite.True(ok)
	suite.Equal(*foundation, *found)
}

func (suite *FoundationRepositoryTestSuite) TestUpdate() {
	foundation := suite.factories.Foundation.Create()
	suite.Require().NoError(suite.repo.Insert(foundation))

	changed := suite.factories.Foundation.Create()
	changed.Name = "Fundação Renomeada"
	changed.Email = "novo@teste.org"
	changed.Phone = "1133334444"
	changed.SupportedInstitution = "Instituição Y"

	suite.Require().NoError(suite.repo.Update(changed))

	found, ok, err := suite.repo.FindByTaxID(foundation.TaxID)
	suite.NoError(err)
	suite.True(ok)
	suite.Equal(foundation.ID, found.ID)
	suite.Equal("Fundação Renomeada", found.Name)
	suite.Equal("novo@teste.org", found.Email)
	suite.Equal("1133334444", found.Phone)
	suite.Equal("Instituição Y", found.SupportedInstitution)
}

func (suite *FoundationRepositoryTestSuite) TestUpdateWithSameValues() {
	foundation := suite.factories.Foundation.Create()
	suite.Require().NoError(suite.repo.Insert(foundation))

	suite.NoError(suite.repo.Update(suite.factories.Foundation.Create()))
}

func (suite *FoundationRepositoryTestSuite) TestUpdateNotFound() {
	existing := suite.factories.Foundation.WithTaxID("11444777000161")
	suite.Require().NoError(suite.repo.Insert(existing))

	err := suite.repo.Update(suite.factories.Foundation.WithTaxID("27865757000102"))

	suite.ErrorIs(err, apperrors.ErrFoundationNotFound)
	all, err := suite.repo.ListAll()
	suite.NoError(err)
	suite.Equal([]models.Foundation{*existing}, all)
}

func (suite *FoundationRepositoryTestSuite) TestUpdateValidationBeforeWrite() {
	foundation := suite.factories.Foundation.Create()
	suite.Require().NoError(suite.repo.Insert(foundation))

	blank := suite.factories.Foundation.Create()
	blank.Name = ""

	err := suite.repo.Update(blank)

	suite.True(apperrors.IsValidation(err))
	found, _, err := suite.repo.FindByTaxID(foundation.TaxID)
	suite.NoError(err)
	suite.Equal(foundation.Name, found.Name)
}

func (suite *FoundationRepositoryTestSuite) TestDeleteTwice() {
	foundation := suite.factories.Foundation.Create()
	suite.Require().NoError(suite.repo.Insert(foundation))

	removed, err := suite.repo.Delete(foundation.TaxID)
	suite.NoError(err)
	suite.True(removed)

	removed, err = suite.repo.Delete(foundation.TaxID)
	suite.NoError(err)
	suite.False(removed)

	_, ok, err := suite.repo.FindByTaxID(foundation.TaxID)
	suite.NoError(err)
	suite.False(ok)
}

func (suite *FoundationRepositoryTestSuite) TestIDsAreNotReused() {
	first := suite.factories.Foundation.WithTaxID("27865757000102")
	suite.Require().NoError(suite.repo.Insert(first))
	second := suite.factories.Foundation.WithTaxID("11444777000161")
	suite.Require().NoError(suite.repo.Insert(second))

	_, err := suite.repo.Delete(second.TaxID)
	suite.Require().NoError(err)

	third := suite.factories.Foundation.WithTaxID("11222333000181")
	suite.Require().NoError(suite.repo.Insert(third))

	suite.Greater(third.ID, second.ID)
	suite.Greater(second.ID, first.ID)
}

func (suite *FoundationRepositoryTestSuite) TestListAllOrderedByID() {
	taxIDs := []string{"11444777000161", "27865757000102", "11222333000181"}
	for _, taxID := range taxIDs {
		suite.Require().NoError(suite.repo.Insert(suite.factories.Foundation.WithTaxID(taxID)))
	}

	all, err := suite.repo.ListAll()

	suite.NoError(err)
	suite.Require().Len(all, 3)
	for i, f := range all {
		suite.Equal(taxIDs[i], f.TaxID)
		if i > 0 {
			suite.Greater(f.ID, all[i-1].ID)
		}
	}
}

func (suite *FoundationRepositoryTestSuite) TestListAllEmpty() {
	all, err := suite.repo.ListAll()

	suite.NoError(err)
	suite.NotNil(all)
	suite.Empty(all)
}

func (suite *FoundationRepositoryTestSuite) TestConcurrentInsertSameTaxID() {
	const writers = 16
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		successes  int
		duplicates int
		others     []error
	)

	start := make(chan struct{})
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			foundation := suite.factories.Foundation.Create()
			foundation.Name = fmt.Sprintf("Fundação %d", i)
			<-start

			err := suite.repo.Insert(foundation)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case apperrors.IsAlreadyExists(err):
				duplicates++
			default:
				others = append(others, err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	suite.Empty(others)
	suite.Equal(1, successes)
	suite.Equal(writers-1, duplicates)

	var rows int64
	suite.NoError(suite.db.Model(&models.Foundation{}).Where("tax_id = ?", "27865757000102").Count(&rows).Error)
	suite.Equal(int64(1), rows)
}

func (suite *FoundationRepositoryTestSuite) TestStorageUnavailable() {
	suite.Require().NoError(database.Close(suite.db))

	_, _, err := suite.repo.FindByTaxID("27865757000102")
	suite.True(apperrors.IsStorageUnavailable(err))

	err = suite.repo.Insert(suite.factories.Foundation.Create())
	suite.True(apperrors.IsStorageUnavailable(err))

	_, err = suite.repo.Delete("27865757000102")
	suite.True(apperrors.IsStorageUnavailable(err))

	_, err = suite.repo.ListAll()
	suite.True(apperrors.IsStorageUnavailable(err))

	err = suite.repo.Update(suite.factories.Foundation.Create())
	suite.True(apperrors.IsStorageUnavailable(err))

	_, err = suite.repo.Count()
	suite.True(apperrors.IsStorageUnavailable(err))

	err = suite.repo.EnsureSchema()
	suite.True(apperrors.IsStorageUnavailable(err))

	// Reopen so TearDownTest has a live pool to close.
	path := filepath.Join(suite.T().TempDir(), "reopened.db")
	db, err := database.Initialize(database.DriverSQLite, path, nil)
	suite.Require().NoError(err)
	suite.db = db
}

// Run the test suite
func TestFoundationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FoundationRepositoryTestSuite))
}
