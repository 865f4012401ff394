package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsProtected(t *testing.T) {
	protected := []string{
		"/dashboard",
		"/dashboard/settings",
		"/onboarding",
		"/onboarding/creator/tiktok",
		"/payouts",
		"/payouts/history",
		"/campaigns/new",
		"/api/payouts",
		"/api/v1/campaigns/abc123",
		"/api/v1/submissions",
		"/signin",
		"/signup",
	}
	for _, path := range protected {
		assert.True(t, IsProtected(path), "path %s", path)
	}

	public := []string{
		"/",
		"/about",
		"/campaigns",
		"/campaigns/abc123",
		"/dashboards", // prefix match must respect segment boundaries
		"/api/health",
		"/api/v1/auth/signin", // must stay reachable anonymously
	}
	for _, path := range public {
		assert.False(t, IsProtected(path), "path %s", path)
	}
}

func TestRequiresPayment(t *testing.T) {
	assert.True(t, RequiresPayment("/payouts"))
	assert.True(t, RequiresPayment("/payouts/history"))
	assert.True(t, RequiresPayment("/campaigns/new"))
	assert.True(t, RequiresPayment("/api/payouts"))
	assert.True(t, RequiresPayment("/api/payouts/export"))
	assert.True(t, RequiresPayment("/api/v1/campaigns/abc123"))

	assert.False(t, RequiresPayment("/campaigns"))
	assert.False(t, RequiresPayment("/campaigns/abc123"))
	assert.False(t, RequiresPayment("/dashboard"))
	assert.False(t, RequiresPayment("/payoutsarchive"))
}

func TestIsAuthPage(t *testing.T) {
	assert.True(t, IsAuthPage("/signin"))
	assert.True(t, IsAuthPage("/signup"))
	assert.False(t, IsAuthPage("/signin/reset"))
	assert.False(t, IsAuthPage("/dashboard"))
}
