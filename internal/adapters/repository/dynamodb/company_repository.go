// Package dynamodb implements ports.CompanyRepository on a DynamoDB table
// keyed by the company ID.
package dynamodb

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/company"
	"github.com/jsamuelsen11/company-adhesion-service/internal/domain/period"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/storeguard"
	"github.com/jsamuelsen11/company-adhesion-service/internal/ports"
)

// Compile-time check that CompanyRepository implements ports.CompanyRepository.
var _ ports.CompanyRepository = (*CompanyRepository)(nil)

// timeLayout is fixed-width so that string order matches time order. Items
// written with fewer fractional digits still parse as RFC 3339.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// API is the subset of *dynamodb.Client used by the repository.
type API interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type companyItem struct {
	ID           string `dynamodbav:"id"`
	TaxID        string `dynamodbav:"taxId"`
	LegalName    string `dynamodbav:"legalName"`
	AdhesionDate string `dynamodbav:"adhesionDate"`
	Type         string `dynamodbav:"type"`
}

// CompanyRepository stores companies as items of a single table.
type CompanyRepository struct {
	api   API
	table string
	guard *storeguard.Guard
}

// NewCompanyRepository creates a CompanyRepository. guard may be nil.
func NewCompanyRepository(api API, table string, guard *storeguard.Guard) *CompanyRepository {
	return &CompanyRepository{api: api, table: table, guard: guard}
}

// FindByID reads the item with a strongly consistent GetItem.
func (r *CompanyRepository) FindByID(ctx context.Context, id string) (company.Company, bool, error) {
	out, err := storeguard.Run(ctx, r.guard, "companies.get_item", func(ctx context.Context) (*dynamodb.GetItemOutput, error) {
		return r.api.GetItem(ctx, &dynamodb.GetItemInput{
			TableName:      aws.String(r.table),
			Key:            map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
			ConsistentRead: aws.Bool(true),
		})
	})
	if err != nil {
		return company.Company{}, false, fmt.Errorf("getting company %s: %w", id, err)
	}
	if len(out.Item) == 0 {
		return company.Company{}, false, nil
	}

	c, err := unmarshalCompany(out.Item)
	if err != nil {
		return company.Company{}, false, err
	}
	return c, true, nil
}

// FindAll scans the table. The table keeps no insertion sequence, so results
// are ordered by adhesion date, then ID.
func (r *CompanyRepository) FindAll(ctx context.Context) ([]company.Company, error) {
	companies, err := r.scan(ctx, "companies.scan", &dynamodb.ScanInput{TableName: aws.String(r.table)})
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}

	slices.SortStableFunc(companies, func(a, b company.Company) int {
		if c := a.AdhesionDate.Compare(b.AdhesionDate); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return companies, nil
}

// FindByAdhesionDateBetween scans with a BETWEEN filter on adhesionDate and
// re-checks each item against the exact bounds.
func (r *CompanyRepository) FindByAdhesionDateBetween(ctx context.Context, start, end time.Time) ([]company.Company, error) {
	filter := expression.Name("adhesionDate").Between(
		expression.Value(formatTime(start)),
		expression.Value(formatTime(end)),
	)
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("building adhesion date filter: %w", err)
	}

	scanned, err := r.scan(ctx, "companies.scan_adhesion_date", &dynamodb.ScanInput{
		TableName:                 aws.String(r.table),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("listing companies adhered between %s and %s: %w",
			start.Format(time.RFC3339), end.Format(time.RFC3339), err)
	}

	w := period.Window{Start: start, End: end}
	out := make([]company.Company, 0, len(scanned))
	for _, c := range scanned {
		if w.Contains(c.AdhesionDate) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Save writes c with PutItem, replacing any item with the same ID. An empty
// ID is replaced with a random UUID.
func (r *CompanyRepository) Save(ctx context.Context, c company.Company) (company.Company, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	item := companyItem{
		ID:           c.ID,
		TaxID:        c.TaxID,
		LegalName:    c.LegalName,
		AdhesionDate: formatTime(c.AdhesionDate),
		Type:         string(c.Type),
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return company.Company{}, fmt.Errorf("marshaling company %s: %w", c.ID, err)
	}

	err = r.guard.Do(ctx, "companies.put_item", func(ctx context.Context) error {
		_, err := r.api.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.table),
			Item:      av,
		})
		return err
	})
	if err != nil {
		return company.Company{}, fmt.Errorf("saving company %s: %w", c.ID, err)
	}

	return item.toDomain()
}

func (r *CompanyRepository) scan(ctx context.Context, operation string, input *dynamodb.ScanInput) ([]company.Company, error) {
	var items []map[string]types.AttributeValue

	err := r.guard.Do(ctx, operation, func(ctx context.Context) error {
		items = nil
		pages := dynamodb.NewScanPaginator(r.api, input)
		for pages.HasMorePages() {
			page, err := pages.NextPage(ctx)
			if err != nil {
				return err
			}
			items = append(items, page.Items...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	companies := make([]company.Company, 0, len(items))
	for _, item := range items {
		c, err := unmarshalCompany(item)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, nil
}

func unmarshalCompany(av map[string]types.AttributeValue) (company.Company, error) {
	var item companyItem
	if err := attributevalue.UnmarshalMap(av, &item); err != nil {
		return company.Company{}, fmt.Errorf("unmarshaling company item: %w", err)
	}
	return item.toDomain()
}

func (i companyItem) toDomain() (company.Company, error) {
	adhered, err := time.Parse(time.RFC3339Nano, i.AdhesionDate)
	if err != nil {
		return company.Company{}, fmt.Errorf("company %s: parsing adhesion date %q: %w", i.ID, i.AdhesionDate, err)
	}
	return company.Company{
		ID:           i.ID,
		TaxID:        i.TaxID,
		LegalName:    i.LegalName,
		AdhesionDate: adhered,
		Type:         company.Type(i.Type),
	}, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
