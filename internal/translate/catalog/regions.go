package catalog

// RegionMap translates a source-cloud region/location string into its
// closest GCP region, by physical proximity and latency rather than strict
// geographic identity. Supplements the original Python config's single
// GCP_REGION default with the full AWS/Azure region vocabulary so the
// region/locale rewrite step (see the Python language transformer) can pick
// a sensible target instead of hardcoding one region for every migration.
var RegionMap = map[string]string{
	// AWS.
	"us-east-1":      "us-east4",
	"us-east-2":      "us-east1",
	"us-west-1":      "us-west1",
	"us-west-2":      "us-west1",
	"eu-west-1":      "europe-west1",
	"eu-west-2":      "europe-west2",
	"eu-west-3":      "europe-west9",
	"eu-central-1":   "europe-west3",
	"eu-north-1":     "europe-north1",
	"ap-south-1":     "asia-south1",
	"ap-southeast-1": "asia-southeast1",
	"ap-southeast-2": "australia-southeast1",
	"ap-northeast-1": "asia-northeast1",
	"ap-northeast-2": "asia-northeast3",
	"ca-central-1":   "northamerica-northeast1",
	"sa-east-1":      "southamerica-east1",

	// Azure.
	"eastus":            "us-east4",
	"eastus2":           "us-east1",
	"westus":            "us-west1",
	"westus2":           "us-west1",
	"westeurope":        "europe-west1",
	"northeurope":       "europe-west2",
	"uksouth":           "europe-west2",
	"francecentral":     "europe-west9",
	"germanywestcentral": "europe-west3",
	"southeastasia":     "asia-southeast1",
	"eastasia":          "asia-east2",
	"japaneast":         "asia-northeast1",
	"koreacentral":      "asia-northeast3",
	"centralindia":      "asia-south1",
	"australiaeast":     "australia-southeast1",
	"canadacentral":     "northamerica-northeast1",
	"brazilsouth":       "southamerica-east1",
}

// ClosestGCPRegion returns the GCP region closest to the given AWS or Azure
// region/location identifier, or the fallback if there is no entry.
func ClosestGCPRegion(sourceRegion, fallback string) string {
	if gcp, ok := RegionMap[sourceRegion]; ok {
		return gcp
	}
	return fallback
}
