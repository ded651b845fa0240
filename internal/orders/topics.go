package orders

import "strconv"

const TopicPedidoCreado = "pedido.creado"

// Partition key = pedido id, so events for one order keep their ordering.
func PartitionKey(pedidoID int64) []byte {
	return []byte(strconv.FormatInt(pedidoID, 10))
}
