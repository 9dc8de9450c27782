package fetch

import (
	"github.com/google/uuid"
	"github.com/hayseedprops/hayseed-dashboard/internal/models"
)

// DemoRecords returns the canned record set served for a source when a live
// fetch fails and the demo fallback policy is configured. Fresh IDs are
// assigned per call so fallback records never collide across cycles.
func DemoRecords(src models.Source) []models.Record {
	var records []models.Record
	switch src {
	case models.SourceViolations:
		records = []models.Record{
			{
				Source:         models.SourceViolations,
				Address:        "1234 Main St, Louisville, KY 40211",
				Zip:            "40211",
				Score:          9,
				ViolationType:  "Structural Damage",
				CaseNumber:     "VM-2025-001",
				Status:         "Closed",
				InspectionDate: "2025-07-14",
			},
			{
				Source:         models.SourceViolations,
				Address:        "5678 Oak Ave, Louisville, KY 40212",
				Zip:            "40212",
				Score:          8,
				ViolationType:  "Fire Hazard",
				CaseNumber:     "VM-2025-002",
				Status:         "Closed",
				InspectionDate: "2025-07-21",
			},
			{
				Source:         models.SourceViolations,
				Address:        "910 Market St, Louisville, KY 40202",
				Zip:            "40202",
				Score:          6,
				ViolationType:  "Vacant Structure",
				CaseNumber:     "VM-2025-003",
				Status:         "Closed",
				InspectionDate: "2025-08-02",
			},
		}
	case models.SourceLisPendens:
		records = []models.Record{
			{
				Source:           models.SourceLisPendens,
				Address:          "2200 Bank St, Louisville, KY 40212",
				Zip:              "40212",
				Score:            8,
				Grantor:          "SMITH JOHN",
				Grantee:          "FIRST COMMONWEALTH BANK",
				LegalDescription: "LOT 12 2200 BANK ST",
				FiledDate:        "01/15/2025",
			},
		}
	case models.SourceTaxDelinquent:
		records = []models.Record{
			{
				Source:          models.SourceTaxDelinquent,
				Address:         "415 Cedar Ct, Louisville, KY 40203",
				Zip:             "40203",
				Score:           7,
				AmountOwed:      4312.50,
				YearsDelinquent: 2,
			},
		}
	}

	for i := range records {
		records[i].ID = uuid.NewString()
	}
	return records
}
