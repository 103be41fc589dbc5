package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vaxbook/config"
	"vaxbook/database/repository"
	"vaxbook/models"
	"vaxbook/routes"
	"vaxbook/services/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type harness struct {
	t       *testing.T
	baseURL string
	store   session.Store
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repos := repository.NewMemory()
	_, err := repository.SeedVaccines(context.Background(), repos.Vaccines)
	require.NoError(t, err)
	srv := httptest.NewServer(routes.NewServer(repos, &config.Config{TokenTTL: time.Hour}, zap.NewNop()))
	t.Cleanup(srv.Close)
	return &harness{t: t, baseURL: srv.URL, store: session.NewMemoryStore()}
}

func (h *harness) run(args ...string) (string, string, int) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	code := Execute(context.Background(), append([]string{"--base-url", h.baseURL}, args...), Deps{
		Store:  h.store,
		Out:    &out,
		Err:    &errOut,
		Logger: zap.NewNop(),
	})
	return out.String(), errOut.String(), code
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, errOut, code := h.run(args...)
	require.Equal(h.t, 0, code, "stderr: %s", errOut)
	return out
}

func TestVaccinesListAndSearch(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("vaccines", "list")
	assert.Contains(t, out, "Rotavirus")
	assert.Contains(t, out, "850,000 VND")

	out = h.mustRun("vaccines", "list", "--search", "viem", "--json")
	var list []models.Vaccine
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.NotEmpty(t, list)
	for _, v := range list {
		assert.Contains(t, strings.ToLower(v.Name), "vi")
	}

	out = h.mustRun("vaccines", "list", "--limit", "3", "--json")
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Len(t, list, 3)
}

func TestLoginFlow(t *testing.T) {
	h := newHarness(t)

	_, errOut, code := h.run("whoami")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "not logged in")

	_, errOut, code = h.run("register", "--name", "Mai", "--email", "mai@example.com", "--password", "secret", "--confirm", "other")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Error:")

	h.mustRun("register", "--name", "Mai", "--email", "mai@example.com", "--password", "secret", "--confirm", "secret")

	_, errOut, code = h.run("login", "--email", "mai@example.com", "--password", "bad")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Invalid credentials")

	out := h.mustRun("login", "--email", "mai@example.com", "--password", "secret")
	assert.Contains(t, out, "Logged in as Mai <mai@example.com>")

	out = h.mustRun("whoami")
	assert.Contains(t, out, "Mai <mai@example.com> (customer)")

	h.mustRun("logout")
	_, _, code = h.run("children", "list")
	assert.Equal(t, 1, code)
}

func TestChildDraftAndBooking(t *testing.T) {
	h := newHarness(t)
	h.mustRun("register", "--name", "Mai", "--email", "mai@example.com", "--password", "secret")
	h.mustRun("login", "--email", "mai@example.com", "--password", "secret")

	h.mustRun("children", "draft", "--name", "An", "--dob", "01/02/2020")
	out := h.mustRun("children", "draft", "--gender", "Nam")
	assert.Contains(t, out, "An")
	assert.Contains(t, out, "Nam")

	out = h.mustRun("children", "add", "--json")
	var child models.Child
	require.NoError(t, json.Unmarshal([]byte(out), &child))
	assert.Equal(t, "An", child.Name)
	assert.Equal(t, models.GenderMale, child.Gender)

	draft, err := session.NewManager(h.store).ChildDraft(context.Background())
	require.NoError(t, err)
	assert.Nil(t, draft, "draft is cleared after a successful add")

	var vaccines []models.Vaccine
	require.NoError(t, json.Unmarshal([]byte(h.mustRun("vaccines", "list", "--json")), &vaccines))

	_, errOut, code := h.run("appointments", "book", "--child", child.ID, "--vaccine", vaccines[0].ID, "--date", "15/10/2030", "--time", "18:00")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "08:00")

	out = h.mustRun("appointments", "book", "--child", child.ID, "--vaccine", vaccines[0].ID, "--date", "15/10/2030", "--time", "09:00", "--json")
	var appt models.Appointment
	require.NoError(t, json.Unmarshal([]byte(out), &appt))
	assert.Equal(t, models.StatusPending, appt.Status)

	out = h.mustRun("appointments", "list")
	assert.Contains(t, out, "An")
	assert.Contains(t, out, "15/10/2030 09:00")

	out = h.mustRun("appointments", "cancel", appt.ID)
	assert.Contains(t, out, "canceled")

	_, errOut, code = h.run("appointments", "cancel", appt.ID)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Only pending appointments can be canceled")
}

func TestStaticCommands(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("support")
	assert.Contains(t, out, "0123-456-789")
	assert.Contains(t, out, "support@vaccine.com")

	out = h.mustRun("guide")
	assert.Contains(t, out, "Quy trình tiêm phòng")
	assert.Contains(t, out, "https://vnvc.vn/cam-nang-tiem-chung/quy-trinh-tiem-chung/")
}
