package domain

import (
	"net"
	"strings"
)

// Tenant is an isolated customer account, reachable through one or more bound domains.
type Tenant struct {
	TenantID   string   `json:"tenantID"`
	Name       string   `json:"name"`
	IsApproved bool     `json:"isApproved"`
	Domains    []string `json:"domains"`
	AuditFields
}

// TenantDomain binds a host name to a tenant.
type TenantDomain struct {
	Domain   string `json:"domain"`
	TenantID string `json:"tenantID"`
}

// NormalizeHost lower-cases a request host and strips any port.
func NormalizeHost(host string) string {
	host = strings.TrimSpace(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimSuffix(strings.ToLower(host), ".")
}
