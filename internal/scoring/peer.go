package scoring

// PeerAverage recebe o total mais recente de cada outro usuário numa dimensão
// e devolve a média arredondada em duas casas. Sem pares, devolve 0.
func PeerAverage(latest []int) float64 {
	if len(latest) == 0 {
		return 0
	}
	sum := 0
	for _, v := range latest {
		sum += v
	}
	return float64(roundedCents(sum, len(latest))) / 100
}

// roundedCents devolve sum/n em centésimos, arredondado meio para cima,
// calculado em inteiros.
func roundedCents(sum, n int) int {
	num, den := 200*sum+n, 2*n
	cents := num / den
	if num%den != 0 && num < 0 {
		cents--
	}
	return cents
}
