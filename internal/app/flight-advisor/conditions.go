package flightadvisor

import (
	"strconv"
)

type ConditionFunc func(map[string]any) map[string]any

type QueryResult struct {
	Data       [][]byte
	Count      int
	Limit      int
	Offset     int
	TotalCount int64
}

func WithID(id string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["id"] = id
		return m
	}
}

func WithTenants(tenants []string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["tenants"] = tenants
		return m
	}
}

func WithRegions(regions []string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["regions"] = regions
		return m
	}
}

func WithOrganization(organizationID string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["organization"] = organizationID
		return m
	}
}

func WithStatus(status string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["status"] = status
		return m
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["offset"] = offset
		return m
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["limit"] = limit
		return m
	}
}

func WithParams(params map[string][]string) []ConditionFunc {
	conditions := make([]ConditionFunc, 0)

	for k, v := range params {
		if len(v) == 0 {
			continue
		}

		switch k {
		case "id":
			conditions = append(conditions, WithID(v[0]))
		case "region":
			conditions = append(conditions, WithRegions(v))
		case "organization":
			conditions = append(conditions, WithOrganization(v[0]))
		case "status":
			conditions = append(conditions, WithStatus(v[0]))
		case "offset":
			if offset, err := strconv.Atoi(v[0]); err == nil {
				conditions = append(conditions, WithOffset(offset))
			}
		case "limit":
			if limit, err := strconv.Atoi(v[0]); err == nil {
				conditions = append(conditions, WithLimit(limit))
			}
		}
	}

	return conditions
}
