package api

import (
	"time"

	"github.com/harshakreox/ghostqa-cli/internal/category"
)

// --- API Response Envelope ---

type apiResponse[T any] struct {
	Data  T       `json:"data"`
	Error *apiErr `json:"error,omitempty"`
}

type apiErr struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// --- Project ---

// Project is a container for test artifacts against one system under test.
type Project struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	BaseURL     string     `json:"base_url,omitempty"`
	TestUser    string     `json:"test_username,omitempty"`
	TestPass    string     `json:"test_password,omitempty"`
	UIConfig    UIConfig   `json:"ui_config"`
	TestCases   []Item     `json:"test_cases,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// UIConfig records which test frameworks a project has enabled.
type UIConfig struct {
	SelectedFrameworks []string `json:"selected_frameworks"`
	PrimaryFramework   string   `json:"primary_framework,omitempty"`
}

// CreateProjectInput defines the fields for creating a project.
type CreateProjectInput struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	BaseURL     string    `json:"base_url,omitempty"`
	TestUser    string    `json:"test_username,omitempty"`
	TestPass    string    `json:"test_password,omitempty"`
	UIConfig    *UIConfig `json:"ui_config,omitempty"`
}

// UpdateProjectInput defines the fields for updating a project.
type UpdateProjectInput struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	BaseURL     *string   `json:"base_url,omitempty"`
	TestUser    *string   `json:"test_username,omitempty"`
	TestPass    *string   `json:"test_password,omitempty"`
	UIConfig    *UIConfig `json:"ui_config,omitempty"`
}

// --- Folder ---

// Folder is a user-created grouping node scoped to one project and one
// category. A nil ParentFolderID means root.
type Folder struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	ProjectID      string            `json:"project_id"`
	ParentFolderID *string           `json:"parent_folder_id"`
	Category       category.Category `json:"category"`
	CreatedAt      time.Time         `json:"created_at"`
}

// CreateFolderInput defines the fields for creating a folder.
type CreateFolderInput struct {
	Name           string  `json:"name"`
	ParentFolderID *string `json:"parent_folder_id,omitempty"`
}

// UpdateFolderInput renames or reparents a folder.
type UpdateFolderInput struct {
	Name           *string `json:"name,omitempty"`
	ParentFolderID *string `json:"parent_folder_id,omitempty"`
}

// --- Item ---

// Item is one test artifact. The Category tag decides which payload slice
// is populated; the shape is resolved once here rather than duck-typed
// throughout the views.
type Item struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	FolderID    *string           `json:"folder_id"`
	Category    category.Category `json:"category,omitempty"`
	Actions     []Action          `json:"actions,omitempty"`
	Scenarios   []Scenario        `json:"scenarios,omitempty"`
	TestCases   []SuiteCase       `json:"test_cases,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   *time.Time        `json:"updated_at,omitempty"`
}

// SearchName implements filter.Searchable.
func (i Item) SearchName() string { return i.Name }

// SearchDescription implements filter.Searchable.
func (i Item) SearchDescription() string { return i.Description }

// Action is a single step of an action-based test case.
type Action struct {
	Order    int    `json:"order"`
	Type     string `json:"type"`
	Selector string `json:"selector,omitempty"`
	Value    string `json:"value,omitempty"`
}

// Scenario is one scenario of a gherkin feature.
type Scenario struct {
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
	Tags  []string `json:"tags,omitempty"`
}

// SuiteCase is one row of a traditional table-format suite.
type SuiteCase struct {
	Name     string `json:"name"`
	Steps    string `json:"steps,omitempty"`
	Expected string `json:"expected,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// CreateItemInput defines the shared fields for creating an item; the
// category-specific payload rides along unmodified.
type CreateItemInput struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	FolderID    *string     `json:"folder_id,omitempty"`
	Actions     []Action    `json:"actions,omitempty"`
	Scenarios   []Scenario  `json:"scenarios,omitempty"`
	TestCases   []SuiteCase `json:"test_cases,omitempty"`
}

// UpdateItemInput defines the fields for updating an item.
type UpdateItemInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// --- User ---

// User is an account mutated through the admin screens only.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserInput defines the fields for creating a user.
type CreateUserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserInput defines the fields for updating a user.
type UpdateUserInput struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// --- Release / Report ---

// Release is a named collection of environments and projects tracked
// toward a deployment milestone.
type Release struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Status       string    `json:"status,omitempty"`
	Environments []string  `json:"environments"`
	ProjectIDs   []string  `json:"project_ids"`
	Passed       int       `json:"passed"`
	Failed       int       `json:"failed"`
	CreatedAt    time.Time `json:"created_at"`
}

// Report aggregates run results for one project.
type Report struct {
	ProjectID   string     `json:"project_id"`
	ProjectName string     `json:"project_name"`
	Passed      int        `json:"passed"`
	Failed      int        `json:"failed"`
	Skipped     int        `json:"skipped"`
	LastRunAt   *time.Time `json:"last_run_at,omitempty"`
}

// --- Auth ---

// LoginInput defines the credentials for logging in.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse contains the session information after successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// --- Query ---

// QueryParams is a map of URL query parameters.
type QueryParams map[string]string
