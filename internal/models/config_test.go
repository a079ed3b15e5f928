package models

import "testing"

func TestValidateCronjobConfig(t *testing.T) {
	tests := []struct {
		name          string
		checkInterval int
		productDelay  int
		wantErr       bool
	}{
		{"valores mínimos", 5, 1, false},
		{"valores folgados", 30, 2, false},
		{"intervalo abaixo do mínimo", 4, 1, true},
		{"pausa abaixo do mínimo", 5, 0, true},
		{"ambos inválidos", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCronjobConfig(tt.checkInterval, tt.productDelay)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCronjobConfig(%d, %d) erro = %v, esperado erro = %v",
					tt.checkInterval, tt.productDelay, err, tt.wantErr)
			}
		})
	}
}
