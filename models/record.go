package models

import (
	"fmt"
	"strings"
)

// DateLayout is the ISO calendar-date format used by all record date fields.
const DateLayout = "2006-01-02"

const (
	PatientCollection = "patients"
	ExamCollection    = "exams"
	ProductCollection = "products"
	OrderCollection   = "orders"
)

// Record is any document the mutation gateway is willing to write.
type Record interface {
	Validate() error
}

// Collections lists every synchronized collection name.
func Collections() []string {
	return []string{PatientCollection, ExamCollection, ProductCollection, OrderCollection}
}

// CollectionPath builds the logical address of a collection in the remote
// store: artifacts/{appInstanceId}/public/data/{collection}. Path separators
// in the instance id are replaced so the address always keeps five segments.
func CollectionPath(appInstanceID, collection string) string {
	clean := strings.NewReplacer("/", "-", "\\", "-").Replace(appInstanceID)
	return fmt.Sprintf("artifacts/%s/public/data/%s", clean, collection)
}
