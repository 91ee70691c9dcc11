package models

import "testing"

func TestParsePermissions(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []Permission
		notWant []Permission
	}{
		{
			name: "technician role string",
			raw:  "create_task;read_task;read_my_tasks;update_task",
			want: []Permission{
				PermissionCreateTask,
				PermissionReadTask,
				PermissionReadMyTasks,
				PermissionUpdateTask,
			},
			notWant: []Permission{PermissionDeleteTask, PermissionReadAllTasks},
		},
		{
			name:    "manager role string",
			raw:     "read_all_tasks;delete_task",
			want:    []Permission{PermissionReadAllTasks, PermissionDeleteTask},
			notWant: []Permission{PermissionCreateTask, PermissionUpdateTask},
		},
		{
			name:    "empty string grants nothing",
			raw:     "",
			notWant: []Permission{PermissionCreateTask, PermissionReadMyTasks},
		},
		{
			name:    "unknown tokens and empty fragments are dropped",
			raw:     "fly;;create_task; ;admin",
			want:    []Permission{PermissionCreateTask},
			notWant: []Permission{"fly", "admin", ""},
		},
		{
			name:    "whitespace around tokens is trimmed",
			raw:     " delete_task ; read_all_tasks",
			want:    []Permission{PermissionDeleteTask, PermissionReadAllTasks},
			notWant: []Permission{PermissionCreateTask},
		},
		{
			name:    "no partial token match",
			raw:     "read_all_tasks_extended;create",
			notWant: []Permission{PermissionReadAllTasks, PermissionCreateTask},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := ParsePermissions(tt.raw)

			for _, p := range tt.want {
				if !set.Has(p) {
					t.Errorf("expected %q in set parsed from %q", p, tt.raw)
				}
			}
			for _, p := range tt.notWant {
				if set.Has(p) {
					t.Errorf("did not expect %q in set parsed from %q", p, tt.raw)
				}
			}
		})
	}
}

func TestPermission_Valid(t *testing.T) {
	if !PermissionUpdateTask.Valid() {
		t.Error("update_task must belong to the vocabulary")
	}
	if Permission("drop_table").Valid() {
		t.Error("drop_table must not belong to the vocabulary")
	}
}
