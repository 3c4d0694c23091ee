package store_test

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"school_system/internal/domain"
	"school_system/internal/store"
	"school_system/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openSession(t *testing.T, db *gorm.DB) *store.Session {
	t.Helper()
	s := store.Open(context.Background(), db)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStudentRoundTrip(t *testing.T) {
	s := openSession(t, testutil.PrepareDB(t))

	in := domain.StudentInput{Name: "Ada Lovelace", Username: "ada", Password: "secret"}
	created, err := store.CreateStudent(s, in)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := store.GetStudentByID(s, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.Student{ID: created.ID, Name: in.Name, Username: in.Username, Password: in.Password}, *got)
}

func TestGetStudentByCredentials(t *testing.T) {
	s := openSession(t, testutil.PrepareDB(t))
	created, err := store.CreateStudent(s, domain.StudentInput{Name: "Ada", Username: "ada", Password: "secret"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		found    bool
	}{
		{"exact match", "ada", "secret", true},
		{"wrong password", "ada", "Secret", false},
		{"wrong username", "adam", "secret", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.GetStudentByCredentials(s, tt.username, tt.password)
			require.NoError(t, err)
			if !tt.found {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, created.ID, got.ID)
		})
	}
}

func TestCreateStudentDuplicateUsername(t *testing.T) {
	s := openSession(t, testutil.PrepareDB(t))
	_, err := store.CreateStudent(s, domain.StudentInput{Name: "A", Username: "dup", Password: "x"})
	require.NoError(t, err)

	_, err = store.CreateStudent(s, domain.StudentInput{Name: "B", Username: "dup", Password: "y"})
	assert.ErrorIs(t, err, store.ErrUniqueViolation)

	// the session stays usable after the failed insert
	students, err := store.ListStudents(s)
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestUsernamesAreUniquePerTable(t *testing.T) {
	s := openSession(t, testutil.PrepareDB(t))
	_, err := store.CreateStudent(s, domain.StudentInput{Name: "A", Username: "same", Password: "x"})
	require.NoError(t, err)
	_, err = store.CreateStaffMember(s, domain.StaffInput{Name: "B", Username: "same", Password: "y"}, domain.RoleFaculty)
	assert.NoError(t, err)
}

func TestUpdateAndDeleteStudent(t *testing.T) {
	s := openSession(t, testutil.PrepareDB(t))
	created, err := store.CreateStudent(s, domain.StudentInput{Name: "A", Username: "a", Password: "x"})
	require.NoError(t, err)

	updated, err := store.UpdateStudent(s, created.ID, domain.StudentInput{Name: "B", Username: "b", Password: "y"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, domain.Student{ID: created.ID, Name: "B", Username: "b", Password: "y"}, *updated)

	missing, err := store.UpdateStudent(s, created.ID+100, domain.StudentInput{Name: "C", Username: "c", Password: "z"})
	require.NoError(t, err)
	assert.Nil(t, missing)

	ok, err := store.DeleteStudent(s, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := store.GetStudentByID(s, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = store.DeleteStudent(s, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteStudentKeepsIncidents(t *testing.T) {
	s := openSession(t, testutil.PrepareDB(t))
	st, err := store.CreateStudent(s, domain.StudentInput{Name: "A", Username: "a", Password: "x"})
	require.NoError(t, err)
	ref := strconv.FormatUint(uint64(st.ID), 10)
	_, err = store.CreateIncident(s, incidentFor(ref))
	require.NoError(t, err)

	_, err = store.DeleteStudent(s, st.ID)
	require.NoError(t, err)

	incidents, err := store.ListIncidentsByStudent(s, ref)
	require.NoError(t, err)
	assert.Len(t, incidents, 1)
}

func TestConcurrentCreateStudent(t *testing.T) {
	db := testutil.PrepareDB(t)

	var wg sync.WaitGroup
	ids := make([]uint, 2)
	errs := make([]error, 2)
	for i, uname := range []string{"first", "second"} {
		wg.Add(1)
		go func(i int, uname string) {
			defer wg.Done()
			s := store.Open(context.Background(), db)
			defer s.Close()
			st, err := store.CreateStudent(s, domain.StudentInput{Name: uname, Username: uname, Password: "pw"})
			ids[i], errs[i] = st.ID, err
		}(i, uname)
	}
	wg.Wait()

	s := openSession(t, db)
	for i, uname := range []string{"first", "second"} {
		require.NoError(t, errs[i])
		got, err := store.GetStudentByID(s, ids[i])
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, uname, got.Username)
	}
	assert.NotEqual(t, ids[0], ids[1])
}

func TestStaffMember(t *testing.T) {
	s := openSession(t, testutil.PrepareDB(t))
	in := domain.StaffInput{Name: "Grace", Username: "grace", Password: "pw"}
	created, err := store.CreateStaffMember(s, in, domain.RoleCommittee)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCommittee, created.Role)

	got, err := store.GetStaffByCredentials(s, "grace", "pw")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, *got)

	got, err = store.GetStaffByCredentials(s, "grace", "nope")
	require.NoError(t, err)
	assert.Nil(t, got)

	updated, err := store.UpdateStaffMember(s, created.ID, in, domain.RolePrincipal)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, domain.RolePrincipal, updated.Role)

	all, err := store.ListStaff(s)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	ok, err := store.DeleteStaffMember(s, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	got, err = store.GetStaffByID(s, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := openSession(t, testutil.PrepareDB(t))
	u, err := store.CreateUser(s, domain.UserInput{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)

	_, err = store.CreateUser(s, domain.UserInput{Name: "B", Email: "a@example.com"})
	assert.ErrorIs(t, err, store.ErrUniqueViolation)

	users, err := store.ListUsers(s)
	require.NoError(t, err)
	assert.Equal(t, []domain.User{u}, users)
}

func incidentFor(studentID string) domain.IncidentInput {
	return domain.IncidentInput{
		StudentID:    studentID,
		StudentName:  "Ada",
		ClassName:    "10B",
		Department:   "Science",
		IncidentDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Description:  "Late to class",
	}
}

func TestIncidentWorkflow(t *testing.T) {
	s := openSession(t, testutil.PrepareDB(t))

	// the referenced student does not exist
	inc, err := store.CreateIncident(s, incidentFor("42"))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, inc.Status)

	other, err := store.CreateIncident(s, incidentFor("7"))
	require.NoError(t, err)

	got, err := store.GetIncidentByID(s, inc.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2024-03-01", got.IncidentDate.Format(domain.IncidentDateLayout))
	assert.Equal(t, "Late to class", got.Description)

	assigned, err := store.AssignAction(s, inc.ID, "Detention")
	require.NoError(t, err)
	require.NotNil(t, assigned)
	assert.Equal(t, "Action Assigned: Detention", assigned.Status)

	actions, err := store.ListActionIncidents(s)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, inc.ID, actions[0].ID)

	resolved, err := store.UpdateIncidentStatus(s, inc.ID, "Resolved")
	require.NoError(t, err)
	require.NotNil(t, resolved)
	got, err = store.GetIncidentByID(s, inc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Resolved", got.Status)

	actions, err = store.ListActionIncidents(s)
	require.NoError(t, err)
	assert.Empty(t, actions)

	all, err := store.ListIncidents(s)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []uint{inc.ID, other.ID}, []uint{all[0].ID, all[1].ID})

	mine, err := store.ListIncidentsByStudent(s, "7")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, other.ID, mine[0].ID)

	missing, err := store.UpdateIncidentStatus(s, 999, "Resolved")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSessionClose(t *testing.T) {
	db := testutil.PrepareDB(t)
	s := store.Open(context.Background(), db)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err := store.ListStudents(s)
	assert.ErrorIs(t, err, store.ErrSessionClosed)
}

func TestSessionCommitsEachWrite(t *testing.T) {
	db := testutil.PrepareDB(t)
	s := store.Open(context.Background(), db)
	created, err := store.CreateStudent(s, domain.StudentInput{Name: "A", Username: "a", Password: "x"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// a fresh session sees the row after the first one rolled back its leftovers
	got, err := store.GetStudentByID(openSession(t, db), created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}
