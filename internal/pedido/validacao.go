package pedido

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/RevendaDigital/api-revenda/internal/utils"
)

const formatoData = "2006-01-02"

func valorValido(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// normalizarValor aceita número JSON ou string com vírgula como separador
// decimal. Apenas a primeira vírgula é substituída.
func normalizarValor(valor interface{}) (float64, bool) {
	switch v := valor.(type) {
	case float64:
		return v, valorValido(v)
	case string:
		s := strings.Replace(strings.TrimSpace(v), ",", ".", 1)
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, valorValido(f)
	default:
		return 0, false
	}
}

// Validar verifica os campos obrigatórios do pedido e normaliza data e valor.
// Qualquer campo rejeitado impede a persistência e volta na lista de campos.
func Validar(req pedidoRequest) (*Pedido, *utils.ErroValidacao) {
	var campos []string

	if req.ClienteID == 0 {
		campos = append(campos, "clienteId")
	}
	if req.CarroID == 0 {
		campos = append(campos, "carroId")
	}

	var data time.Time
	if utils.CampoVazio(req.DataPedido) {
		campos = append(campos, "dataPedido")
	} else if parsed, err := time.Parse(formatoData, strings.TrimSpace(req.DataPedido)); err != nil {
		campos = append(campos, "dataPedido")
	} else {
		data = parsed
	}

	valor, ok := normalizarValor(req.ValorPedido)
	if !ok {
		campos = append(campos, "valorPedido")
	}

	if len(campos) > 0 {
		return nil, &utils.ErroValidacao{Campos: campos}
	}

	return &Pedido{
		ClienteID:   req.ClienteID,
		CarroID:     req.CarroID,
		DataPedido:  data,
		ValorPedido: valor,
	}, nil
}
