package genetic

// Individual pairs a chromosome with the fitness it earned during one
// generation. The algorithm never inspects the concrete type.
type Individual interface {
	Fitness() float32
	Chromosome() *Chromosome
}

// Factory materializes a new individual from an offspring chromosome.
// The individual takes ownership of the chromosome.
type Factory[I Individual] func(chromosome Chromosome) I
