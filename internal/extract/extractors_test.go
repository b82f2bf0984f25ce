package extract

import (
	"testing"
)

func TestIDCardMetadata(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantDOB  string
		wantID   string
	}{
		{
			name:    "labeled card",
			text:    "National ID Card\nDate of Birth: 12/04/1990\nID NO: AB1234567",
			wantDOB: "12/04/1990",
			wantID:  "AB1234567",
		},
		{
			name:   "first qualifying token wins even unlabeled",
			text:   "REF XK99ZZ12 something 11/11/2011",
			wantID: "XK99ZZ12",
			// date appears after the token but extraction is independent
			wantDOB: "11/11/2011",
		},
		{
			name: "nothing recognizable",
			text: "hello there",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := idCardMetadata(tt.text)

			got, ok := rec.Get("DateOfBirth")
			if tt.wantDOB == "" && ok {
				t.Errorf("DateOfBirth = %v, want absent", got)
			}
			if tt.wantDOB != "" && (!ok || got != tt.wantDOB) {
				t.Errorf("DateOfBirth = %v, want %q", got, tt.wantDOB)
			}

			got, ok = rec.Get("IdNumber")
			if tt.wantID == "" && ok {
				t.Errorf("IdNumber = %v, want absent", got)
			}
			if tt.wantID != "" && (!ok || got != tt.wantID) {
				t.Errorf("IdNumber = %v, want %q", got, tt.wantID)
			}
		})
	}
}

func TestIDCardProvenance(t *testing.T) {
	rec := idCardMetadata("ID NO: AB1234567")
	f := fieldByName(t, rec, "IdNumber")
	if f.Source != ByHeuristic {
		t.Errorf("IdNumber provenance = %q, want %q", f.Source, ByHeuristic)
	}
}

func TestCertificateMetadata(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "has successfully",
			text: "Jane Doe\nhas successfully completed the course",
			want: "Jane Doe",
		},
		{
			name: "is hereby",
			text: "Certificate of Merit\nJohn Smith\nis hereby recognized",
			want: "John Smith",
		},
		{
			name: "is awarded",
			text: "This certificate\nAlex Chen\nis awarded for excellence",
			want: "Alex Chen",
		},
		{
			name: "first anchor wins",
			text: "First Person\nhas successfully done X\nSecond Person\nis awarded Y",
			want: "First Person",
		},
		{
			name: "anchor on first line has no preceding line",
			text: "has successfully completed\nJane Doe",
		},
		{
			name: "no anchor",
			text: "Certificate of Attendance\nJane Doe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := certificateMetadata(tt.text)
			got, ok := rec.Get("RecipientName")
			if tt.want == "" {
				if ok {
					t.Errorf("RecipientName = %v, want absent", got)
				}
				return
			}
			if !ok || got != tt.want {
				t.Errorf("RecipientName = %v (present=%t), want %q", got, ok, tt.want)
			}
		})
	}
}

func TestFormMetadata(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantEmail string
		wantPhone string
	}{
		{
			name:      "email and phone",
			text:      "Application Form\nEmail: jane.doe@example.com\nPhone: +1 555-010-2000",
			wantEmail: "jane.doe@example.com",
			wantPhone: "+1 555-010-2000",
		},
		{
			name:      "email only",
			text:      "contact: SUPPORT@EXAMPLE.ORG",
			wantEmail: "SUPPORT@EXAMPLE.ORG",
		},
		{
			name:      "bare digit run",
			text:      "call 0123456789 now",
			wantPhone: "0123456789",
		},
		{
			name: "too short digit run",
			text: "room 12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := formMetadata(tt.text)

			got, ok := rec.Get("Email")
			if tt.wantEmail == "" && ok {
				t.Errorf("Email = %v, want absent", got)
			}
			if tt.wantEmail != "" && (!ok || got != tt.wantEmail) {
				t.Errorf("Email = %v, want %q", got, tt.wantEmail)
			}

			got, ok = rec.Get("Phone")
			if tt.wantPhone == "" && ok {
				t.Errorf("Phone = %v, want absent", got)
			}
			if tt.wantPhone != "" && (!ok || got != tt.wantPhone) {
				t.Errorf("Phone = %v, want %q", got, tt.wantPhone)
			}
		})
	}
}
