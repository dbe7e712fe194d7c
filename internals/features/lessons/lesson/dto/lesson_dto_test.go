package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"tutorku_backend/internals/features/lessons/lesson/model"
)

func TestParseLessonDate(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string // format RFC3339, "" = nil
		err  bool
	}{
		{"rfc3339", "2026-09-01T10:00:00Z", "2026-09-01T10:00:00Z", false},
		{"tanpa zona", "2026-09-01T10:00:00", "2026-09-01T10:00:00Z", false},
		{"spasi pemisah", "2026-09-01 10:00:00", "2026-09-01T10:00:00Z", false},
		{"tanggal saja", "2026-09-01", "2026-09-01T00:00:00Z", false},
		{"ada whitespace", "  2026-09-01  ", "2026-09-01T00:00:00Z", false},
		{"kosong", "", "", false},
		{"format aneh", "01/09/2026", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLessonDate(tc.raw)
			if tc.err {
				if err == nil {
					t.Fatal("mau error, dapat nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLessonDate(%q): %v", tc.raw, err)
			}
			if tc.want == "" {
				if got != nil {
					t.Fatalf("mau nil, dapat %v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("mau waktu, dapat nil")
			}
			if got.UTC().Format(time.RFC3339) != tc.want {
				t.Errorf("got %s, mau %s", got.UTC().Format(time.RFC3339), tc.want)
			}
		})
	}
}

func TestTeacherLessonDetailSerializesFlat(t *testing.T) {
	detail := TeacherLessonDetail{
		TeacherLessonItem: TeacherLessonItem{
			ID:               uuid.New(),
			TeacherID:        uuid.New(),
			Title:            "Aljabar",
			Duration:         60,
			EnrolledStudents: 1,
		},
		Students: []LessonStudentItem{
			{ID: uuid.New(), Name: "Siti", Email: "siti@example.com", Status: "enrolled"},
		},
	}

	out, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// Field lesson dan enrolled_students harus flat di level atas,
	// bukan terbungkus objek "lesson".
	if _, ok := m["lesson"]; ok {
		t.Error("field lesson ikut terserialisasi sebagai objek bersarang")
	}
	for _, key := range []string{"id", "title", "enrolled_students", "students"} {
		if _, ok := m[key]; !ok {
			t.Errorf("key %q tidak ada di level atas: %s", key, out)
		}
	}

	var count int
	if err := json.Unmarshal(m["enrolled_students"], &count); err != nil || count != 1 {
		t.Errorf("enrolled_students = %s, mau 1", m["enrolled_students"])
	}
}

func TestToCreatedLessonResponseEchoesStudentIDs(t *testing.T) {
	now := time.Now()
	lesson := model.LessonModel{
		ID:        uuid.New(),
		TeacherID: uuid.New(),
		Title:     "Aljabar",
		Duration:  60,
		CreatedAt: now,
	}
	students := []uuid.UUID{uuid.New(), uuid.New()}

	resp := ToCreatedLessonResponse(lesson, students)
	if resp.ID != lesson.ID {
		t.Errorf("ID = %s, mau %s", resp.ID, lesson.ID)
	}
	if resp.Title != "Aljabar" || resp.Duration != 60 {
		t.Errorf("field dasar tidak ikut: %+v", resp)
	}
	if len(resp.StudentIDs) != 2 || resp.StudentIDs[0] != students[0] {
		t.Errorf("studentIds tidak di-echo: %v", resp.StudentIDs)
	}
}
