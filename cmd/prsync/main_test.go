package main

import "testing"

func TestCanRunWithoutConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{
			name: "no args",
			args: nil,
			want: true,
		},
		{
			name: "help flag",
			args: []string{"--help"},
			want: true,
		},
		{
			name: "help shorthand",
			args: []string{"-h"},
			want: true,
		},
		{
			name: "version flag",
			args: []string{"--version"},
			want: true,
		},
		{
			name: "help subcommand",
			args: []string{"help", "sync"},
			want: true,
		},
		{
			name: "subcommand with help flag",
			args: []string{"sync", "--help"},
			want: true,
		},
		{
			name: "sync needs config",
			args: []string{"sync", "--pr", "42"},
			want: false,
		},
		{
			name: "fields needs config",
			args: []string{"fields", "--format", "json"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canRunWithoutConfig(tt.args); got != tt.want {
				t.Fatalf("canRunWithoutConfig(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
